// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Account is a mock implementation of key.Account
type Account struct {
	mock.Mock
}

func (m *Account) PublicKey() []byte {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]byte)
}

func (m *Account) Address() string {
	args := m.Called()
	return args.String(0)
}
