package toast

func (m *Manager) typed(t Type, message string, p []Payload) string {
	var payload Payload
	if len(p) > 0 {
		payload = p[0]
	}
	payload.Type = t
	payload.Message = message
	return m.Show(payload)
}

// Success shows a success toast. An optional payload supplies other fields.
func (m *Manager) Success(message string, p ...Payload) string {
	return m.typed(TypeSuccess, message, p)
}

// Error shows an error toast.
func (m *Manager) Error(message string, p ...Payload) string {
	return m.typed(TypeError, message, p)
}

// Info shows an informational toast.
func (m *Manager) Info(message string, p ...Payload) string {
	return m.typed(TypeInfo, message, p)
}

// Warning shows a warning toast.
func (m *Manager) Warning(message string, p ...Payload) string {
	return m.typed(TypeWarning, message, p)
}

// Loading shows a persistent loading toast. Update or Hide it when the work
// finishes.
func (m *Manager) Loading(message string, p ...Payload) string {
	var payload Payload
	if len(p) > 0 {
		payload = p[0]
	}
	payload.Duration = Persistent
	return m.typed(TypeLoading, message, []Payload{payload})
}
