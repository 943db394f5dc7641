// Package main - statemachine.go
//
// This file implements the bot's behavior state machine. Observed game
// states are mapped to bot states through a fixed table, transitions are
// validated against a static adjacency list, and each tick dispatches to
// the handler registered for the current state.
//
// Transition Rules:
//   Idle       -> Exploring, Battling, Capturing, Error
//   Exploring  -> Battling, Capturing, Navigating, Idle, Error
//   Battling   -> Exploring, Idle, Waiting, Error
//   Capturing  -> Exploring, Idle, Error
//   Navigating -> Exploring, Idle, Error
//   Waiting    -> Exploring, Battling, Idle, Error
//   Error      -> Idle, Exploring
//
// Notably there is no Battling -> Capturing edge: a battle has to resolve
// before a capture attempt makes sense.
//
// Error Handling:
// A handler returning an error forces a transition into the Error state;
// the Error handler is expected to recover back to Idle.
package main

// StateHandler runs one tick of behavior for a bot state.
type StateHandler func(info StateInfo) error

// StateMachine validates transitions and dispatches state handlers.
type StateMachine struct {
	current     BotState
	previous    BotState
	hasPrevious bool
	handlers    map[BotState]StateHandler
	transitions map[BotState][]BotState
}

// NewStateMachine creates a state machine starting in Idle.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		current:  BotStateIdle,
		handlers: make(map[BotState]StateHandler),
		transitions: map[BotState][]BotState{
			BotStateIdle:       {BotStateExploring, BotStateBattling, BotStateCapturing, BotStateError},
			BotStateExploring:  {BotStateBattling, BotStateCapturing, BotStateNavigating, BotStateIdle, BotStateError},
			BotStateBattling:   {BotStateExploring, BotStateIdle, BotStateWaiting, BotStateError},
			BotStateCapturing:  {BotStateExploring, BotStateIdle, BotStateError},
			BotStateNavigating: {BotStateExploring, BotStateIdle, BotStateError},
			BotStateWaiting:    {BotStateExploring, BotStateBattling, BotStateIdle, BotStateError},
			BotStateError:      {BotStateIdle, BotStateExploring},
		},
	}
}

// RegisterHandler sets the handler for a state.
func (sm *StateMachine) RegisterHandler(state BotState, handler StateHandler) {
	sm.handlers[state] = handler
	LogDebug("Handler registered for state: %s", state)
}

// CurrentState returns the current state.
func (sm *StateMachine) CurrentState() BotState {
	return sm.current
}

// PreviousState returns the state before the last transition.
func (sm *StateMachine) PreviousState() (BotState, bool) {
	return sm.previous, sm.hasPrevious
}

// TransitionTo moves to a new state if the transition is allowed.
// Rejected transitions leave the state unchanged.
func (sm *StateMachine) TransitionTo(next BotState) bool {
	for _, allowed := range sm.transitions[sm.current] {
		if allowed == next {
			sm.previous = sm.current
			sm.hasPrevious = true
			sm.current = next
			LogInfo("Transition: %s -> %s", sm.previous, sm.current)
			return true
		}
	}
	LogWarn("Invalid transition: %s -> %s", sm.current, next)
	return false
}

// forceError pushes the machine into the Error state regardless of the
// adjacency table. Used when a handler fails.
func (sm *StateMachine) forceError() {
	if sm.current == BotStateError {
		return
	}
	sm.previous = sm.current
	sm.hasPrevious = true
	sm.current = BotStateError
	LogWarn("Forced transition: %s -> %s", sm.previous, sm.current)
}

// MapGameState maps an observed game state to a bot state.
func MapGameState(game GameState) BotState {
	switch game {
	case GameStateExploring:
		return BotStateExploring
	case GameStateInBattle:
		return BotStateBattling
	case GameStatePokemonEncounter:
		return BotStateCapturing
	case GameStateDialog, GameStateMenu, GameStateLoading:
		return BotStateWaiting
	case GameStateUnknown:
		return BotStateIdle
	default:
		return BotStateIdle
	}
}

// Update maps the game state, transitions when it differs from the
// current state, and runs the current state's handler.
func (sm *StateMachine) Update(game GameState, info StateInfo) {
	next := MapGameState(game)
	if next != sm.current {
		sm.TransitionTo(next)
	}

	handler, ok := sm.handlers[sm.current]
	if !ok {
		return
	}
	if err := handler(info); err != nil {
		LogError("Handler for state %s failed: %v", sm.current, err)
		sm.forceError()
	}
}

// Reset returns the machine to Idle.
func (sm *StateMachine) Reset() {
	sm.previous = BotStateIdle
	sm.hasPrevious = false
	sm.current = BotStateIdle
	LogInfo("State machine reset")
}
