package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// MockConfig is a mock implementation of the sdk.Config interface
type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) Flag(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockConfig) Value(path string) string {
	args := m.Called(path)
	return args.String(0)
}

// MockSink is a mock implementation of the sdk.Sink interface
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Append(file string, message string) error {
	args := m.Called(file, message)
	return args.Error(0)
}

// MockFrameProvider is a mock implementation of the sdk.FrameProvider interface
type MockFrameProvider struct {
	mock.Mock
}

func (m *MockFrameProvider) Callers() []sdk.Frame {
	args := m.Called()
	return args.Get(0).([]sdk.Frame)
}

// MockURLSource is a mock implementation of the sdk.URLSource interface
type MockURLSource struct {
	mock.Mock
}

func (m *MockURLSource) CurrentURL() string {
	args := m.Called()
	return args.String(0)
}

// MockLoadListener is a mock implementation of the sdk.LoadListener interface
type MockLoadListener struct {
	mock.Mock
}

func (m *MockLoadListener) OnModelLoad(ev sdk.LoadEvent) {
	m.Called(ev)
}
