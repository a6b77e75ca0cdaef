package crm

// ContactInput is what the sync worker pushes downstream for one lead.
type ContactInput struct {
	LeadID  string
	Email   string
	Name    string
	Phone   string
	Company string
	Status  string
	Reason  string
}

type upsertContactRequest struct {
	ExternalID string   `json:"external_id"`
	Email      string   `json:"email"`
	Name       string   `json:"name,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Company    string   `json:"company,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Note       string   `json:"note,omitempty"`
}
