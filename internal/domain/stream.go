package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamFacilitySearch = "stream:facility:search"
	StreamFacilityDone   = "stream:facility:done"
)

// FacilitySearchEvent - входящее событие на параметризованный поиск
type FacilitySearchEvent struct {
	RequestID uuid.UUID         `json:"request_id"`
	Params    map[string]string `json:"params"`
}

// FacilityDoneEvent - результат поиска для FacilitySearchEvent
type FacilityDoneEvent struct {
	RequestID  uuid.UUID  `json:"request_id"`
	Facilities []Facility `json:"facilities"`
	Total      int        `json:"total"`
	Error      string     `json:"error,omitempty"`
	ErrorCode  string     `json:"error_code,omitempty"`
}

// QueryContext returns the recognized search parameters of the event.
func (e FacilitySearchEvent) QueryContext() QueryContext {
	return NewQueryContext(e.Params)
}

// StreamMessage - сообщение из Redis Stream; Data - JSON из поля "data"
type StreamMessage struct {
	ID   string
	Data string
}
