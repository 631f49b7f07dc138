package store

// StoreRef is the locally cached reference to a remote vector store.
// The remote service owns the authoritative lifecycle; we only keep
// identifiers and display names between refreshes.
type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session represents the active user session state in memory
type Session struct {
	ID string `json:"id"`

	// Sensitive: the remote API credential. Never logged, never echoed
	// back to the client, discarded with the session.
	APIKey string `json:"-"`

	Model string `json:"model"`

	// At most one store is active at a time. Empty string means none.
	ActiveStoreID string `json:"active_store_id"`

	// Known store id -> display name, refreshed on demand from the remote.
	KnownStores map[string]string `json:"known_stores"`
}

const DefaultModel = "gpt-4.1-mini"

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		Model:       DefaultModel,
		KnownStores: map[string]string{},
	}
}

// SetActive replaces any previously active store with the given one.
func (s *Session) SetActive(storeID string) {
	s.ActiveStoreID = storeID
}

// ClearActive drops the active store selection. Used both explicitly and
// after the active store is deleted remotely.
func (s *Session) ClearActive() {
	s.ActiveStoreID = ""
}

func (s *Session) HasCredential() bool {
	return s.APIKey != ""
}

// RememberStores replaces the local id -> name cache with the given refs.
func (s *Session) RememberStores(refs []StoreRef) {
	known := make(map[string]string, len(refs))
	for _, ref := range refs {
		known[ref.ID] = ref.Name
	}
	s.KnownStores = known
}
