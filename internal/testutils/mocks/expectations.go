// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	dicemock "github.com/KirkDiggler/rpg-dungeon/internal/pkg/random/mock"
)

// ExpectRolls queues one Roll(size) call per value, in order
func ExpectRolls(roller *dicemock.MockRoller, size int, values ...int) {
	calls := make([]any, 0, len(values))
	for _, v := range values {
		calls = append(calls, roller.EXPECT().Roll(size).Return(v, nil))
	}
	gomock.InOrder(calls...)
}
