package dataset

// MockLoader is a mock implementation of the Loader interface for testing.
type MockLoader struct {
	LoadFunc   func(path string) (Table, error)
	HeaderFunc func(path string) ([]string, error)
}

func (m *MockLoader) Load(path string) (Table, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return Table{}, nil
}

func (m *MockLoader) Header(path string) ([]string, error) {
	if m.HeaderFunc != nil {
		return m.HeaderFunc(path)
	}
	if m.LoadFunc != nil {
		t, err := m.LoadFunc(path)
		return t.Names(), err
	}
	return nil, nil
}
