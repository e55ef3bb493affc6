package mocks

import (
	"static-host/feature/fileserver"

	"github.com/stretchr/testify/mock"
)

// Controller is a mock implementation of fileserver.Controller
type Controller struct {
	mock.Mock
}

func (m *Controller) Configure(u fileserver.Update) (fileserver.Config, error) {
	args := m.Called(u)
	return args.Get(0).(fileserver.Config), args.Error(1)
}

func (m *Controller) Start() (fileserver.Status, error) {
	args := m.Called()
	return args.Get(0).(fileserver.Status), args.Error(1)
}

func (m *Controller) Stop() (fileserver.Status, error) {
	args := m.Called()
	return args.Get(0).(fileserver.Status), args.Error(1)
}

func (m *Controller) Status() fileserver.Status {
	args := m.Called()
	return args.Get(0).(fileserver.Status)
}
