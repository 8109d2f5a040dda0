// Package mocks contains testify mocks for the service interfaces.
package mocks

import "github.com/stretchr/testify/mock"

// testingT is what the New* constructors need to register expectation checks.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}
