package fsm_test

import (
	"context"
	"fmt"

	"github.com/dmitrig/fsmkit/pkg/fsm"
)

func Example() {
	const (
		Idle    = fsm.StringState("idle")
		Running = fsm.StringState("running")
	)

	machine, err := fsm.NewBuilder(Idle).
		Event("start").
		Transition(Idle, Running).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := machine.Fire(context.Background(), "start"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(machine.Current().Name())
	// Output: running
}

func ExampleEvent_FindTransition() {
	const (
		Pending  = fsm.StringState("pending")
		Approved = fsm.StringState("approved")
		Rejected = fsm.StringState("rejected")
	)

	machine, _ := fsm.NewStateMachine(Pending)
	review, _ := machine.AddEvent(fsm.WithName("review"))

	score := func(min int) fsm.Guard {
		return func(ctx context.Context, args ...any) bool {
			n, ok := args[0].(int)
			return ok && n >= min
		}
	}

	approve, _ := fsm.NewTransition(machine, Pending, Approved, fsm.WithGuard(score(80)))
	reject, _ := fsm.NewTransition(machine, Pending, Rejected)
	_ = review.Add(approve, reject)

	t := review.FindTransition(context.Background(), 95)
	fmt.Println(t)
	// Output: pending -> approved
}
