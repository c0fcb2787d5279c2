package api

// webhookEnvelope is the WAHA webhook body. Only the fields the gate needs
// are decoded; everything else in the payload is ignored.
type webhookEnvelope struct {
	Event   string         `json:"event"`
	Payload webhookPayload `json:"payload"`
}

type webhookPayload struct {
	Body  string        `json:"body"`
	Media *webhookMedia `json:"media"`
}

type webhookMedia struct {
	URL      string `json:"url"`
	Mimetype string `json:"mimetype"`
}
