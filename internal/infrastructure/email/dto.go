package email

import "strings"

// Message is a plain-text notification ready for a delivery provider.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	IsHTML  bool     `json:"isHtml"`
}

// ValidAddress is the same loose check the booking form applies: a
// non-empty string containing '@'.
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	return addr != "" && strings.Contains(addr, "@")
}

// Deliverable reports whether the sender and every recipient look valid.
func (m Message) Deliverable() bool {
	if !ValidAddress(m.From) || len(m.To) == 0 {
		return false
	}
	for _, to := range m.To {
		if !ValidAddress(to) {
			return false
		}
	}
	return true
}
