package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ssinteriors/backend/internal/model"
	"github.com/ssinteriors/backend/internal/service"
)

// EnquiryHandler handles enquiry submission and the stored-enquiry listing.
type EnquiryHandler struct {
	enquiryService service.EnquiryService
}

// NewEnquiryHandler creates an EnquiryHandler with the given service.
func NewEnquiryHandler(enquiryService service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// submitRequest is the expected JSON body for POST /api/enquiry.
// Unknown extra fields are ignored and no field is format-checked: absent
// values degrade to display defaults in the notification instead of
// rejecting the request.
type submitRequest struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	ProjectType string             `json:"projectType"`
	HouseType   string             `json:"houseType"`
	Budget      model.OptionalText `json:"budget"`
	Location    string             `json:"location"`
	Timeline    model.OptionalText `json:"timeline"`
	Description model.OptionalText `json:"description"`
}

// ackResponse is the acknowledgment envelope for POST /api/enquiry.
type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	receivedMessage = "Enquiry received! We will contact you soon."
	failedMessage   = "Failed to send enquiry. Please try again later."
)

// Submit handles POST /api/enquiry.
func (h *EnquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ackResponse{Success: false, Message: "Invalid request body."})
		return
	}

	enq := &model.Enquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		HouseType:   req.HouseType,
		Budget:      req.Budget,
		Location:    req.Location,
		Timeline:    req.Timeline,
		Description: req.Description,
	}

	if err := h.enquiryService.Submit(r.Context(), enq); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ackResponse{Success: false, Message: failedMessage})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ackResponse{Success: true, Message: receivedMessage})
}

// List handles GET /api/enquiries (store-backed deployments only).
// Responds with a JSON array of enquiry records, newest first.
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.enquiryService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to load enquiries"})
		return
	}

	// Return [] not null for empty lists
	if enquiries == nil {
		enquiries = []*model.Enquiry{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(enquiries)
}
