package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGameState(t *testing.T) {
	cases := []struct {
		game GameState
		want BotState
	}{
		{GameStateExploring, BotStateExploring},
		{GameStateInBattle, BotStateBattling},
		{GameStatePokemonEncounter, BotStateCapturing},
		{GameStateDialog, BotStateWaiting},
		{GameStateMenu, BotStateWaiting},
		{GameStateLoading, BotStateWaiting},
		{GameStateUnknown, BotStateIdle},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MapGameState(c.game), "game state %s", c.game)
	}
}

func TestTransitionValidation(t *testing.T) {
	sm := NewStateMachine()
	assert.Equal(t, BotStateIdle, sm.CurrentState())

	assert.True(t, sm.TransitionTo(BotStateExploring))
	assert.True(t, sm.TransitionTo(BotStateBattling))

	// A battle must resolve before a capture attempt.
	assert.False(t, sm.TransitionTo(BotStateCapturing))
	assert.Equal(t, BotStateBattling, sm.CurrentState())

	assert.True(t, sm.TransitionTo(BotStateExploring))
	assert.True(t, sm.TransitionTo(BotStateCapturing))
}

func TestPreviousStateTracking(t *testing.T) {
	sm := NewStateMachine()
	_, ok := sm.PreviousState()
	assert.False(t, ok)

	sm.TransitionTo(BotStateExploring)
	prev, ok := sm.PreviousState()
	assert.True(t, ok)
	assert.Equal(t, BotStateIdle, prev)
}

func TestHandlerErrorForcesErrorState(t *testing.T) {
	sm := NewStateMachine()
	sm.RegisterHandler(BotStateExploring, func(info StateInfo) error {
		return errors.New("boom")
	})

	sm.Update(GameStateExploring, StateInfo{})
	assert.Equal(t, BotStateError, sm.CurrentState())

	// Error recovers only toward Idle or Exploring.
	assert.False(t, sm.TransitionTo(BotStateBattling))
	assert.True(t, sm.TransitionTo(BotStateIdle))
}

func TestUpdateDispatchesHandler(t *testing.T) {
	sm := NewStateMachine()
	ran := false
	sm.RegisterHandler(BotStateBattling, func(info StateInfo) error {
		ran = true
		return nil
	})

	sm.TransitionTo(BotStateExploring)
	sm.Update(GameStateInBattle, StateInfo{})
	assert.True(t, ran)
	assert.Equal(t, BotStateBattling, sm.CurrentState())
}

func TestUpdateWithSameStateDoesNotTransition(t *testing.T) {
	sm := NewStateMachine()
	sm.TransitionTo(BotStateExploring)
	sm.Update(GameStateExploring, StateInfo{})
	assert.Equal(t, BotStateExploring, sm.CurrentState())
	prev, _ := sm.PreviousState()
	assert.Equal(t, BotStateIdle, prev)
}

func TestReset(t *testing.T) {
	sm := NewStateMachine()
	sm.TransitionTo(BotStateExploring)
	sm.Reset()
	assert.Equal(t, BotStateIdle, sm.CurrentState())
	_, ok := sm.PreviousState()
	assert.False(t, ok)
}
