// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// AddressCodec is a mock implementation of validatormanager.AddressCodec
type AddressCodec struct {
	mock.Mock
}

func (m *AddressCodec) Encode(pubKey []byte) (string, error) {
	args := m.Called(pubKey)
	return args.String(0), args.Error(1)
}

func (m *AddressCodec) ToHex(addr string) (string, error) {
	args := m.Called(addr)
	return args.String(0), args.Error(1)
}
