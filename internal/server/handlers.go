package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/nanumteam/nanum/internal/delivery"
	"github.com/nanumteam/nanum/internal/donation"
	"github.com/nanumteam/nanum/internal/metrics"
	"github.com/nanumteam/nanum/internal/repository"
)

func (s *Server) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DonorID        string   `json:"donor_id"`
		MatchMode      string   `json:"match_mode"`
		DeliveryMethod string   `json:"delivery_method"`
		IsAnonymous    bool     `json:"is_anonymous"`
		OrganizationID string   `json:"organization_id"`
		Category       string   `json:"category"`
		Size           string   `json:"size"`
		Description    string   `json:"description"`
		ImageURLs      []string `json:"image_urls"`
		Quantity       int      `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donorID, err := uuid.Parse(req.DonorID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donor_id")
		return
	}

	params := donation.CreateParams{
		DonorID:        donorID,
		MatchMode:      repository.MatchMode(req.MatchMode),
		DeliveryMethod: repository.DeliveryMethod(req.DeliveryMethod),
		IsAnonymous:    req.IsAnonymous,
		Item: donation.ItemParams{
			Category:    req.Category,
			Size:        req.Size,
			Description: req.Description,
			ImageURLs:   req.ImageURLs,
			Quantity:    req.Quantity,
		},
	}
	if req.OrganizationID != "" {
		orgID, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid organization_id")
			return
		}
		params.OrganizationID = &orgID
	}

	created, err := s.engine.Create(r.Context(), params)
	if err != nil {
		respondEngineError(w, "create_donation", err)
		return
	}

	metrics.DonationsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Donation submitted successfully",
		"id":      created.ID.String(),
	})
}

func (s *Server) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	view, err := s.engine.GetView(r.Context(), donationID)
	if err != nil {
		respondEngineError(w, "get_donation", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleDonorCancel enforces the donor-side policy on top of the engine:
// only donations still projecting as pending_approval or pending_match can
// be withdrawn by the donor.
func (s *Server) handleDonorCancel(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := s.engine.GetView(r.Context(), donationID)
	if err != nil {
		respondEngineError(w, "donor_cancel", err)
		return
	}
	if view.Label != donation.LabelPendingApproval && view.Label != donation.LabelPendingMatch {
		respondError(w, http.StatusConflict, "Error: donation can no longer be cancelled")
		return
	}

	events, err := s.engine.DonorCancel(r.Context(), donationID, req.Reason)
	if err != nil {
		respondEngineError(w, "donor_cancel", err)
		return
	}

	s.notifier.Dispatch(r.Context(), events)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation cancelled"})
}

func (s *Server) handleListDonorDonations(w http.ResponseWriter, r *http.Request) {
	donorID, ok := pathUUID(r, "userID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	views, err := s.engine.ListDonorViews(r.Context(), donorID)
	if err != nil {
		respondEngineError(w, "list_donor_donations", err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleAdminApprove(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	events, err := s.engine.AdminApprove(r.Context(), donationID)
	if err != nil {
		respondEngineError(w, "admin_approve", err)
		return
	}

	metrics.DonationsApprovedTotal.Inc()
	s.notifier.Dispatch(r.Context(), events)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation approved"})
}

func (s *Server) handleAdminReject(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	events, err := s.engine.AdminReject(r.Context(), donationID, req.Reason)
	if err != nil {
		respondEngineError(w, "admin_reject", err)
		return
	}

	metrics.DonationsRejectedTotal.Inc()
	s.notifier.Dispatch(r.Context(), events)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation rejected"})
}

func (s *Server) handleAdminReset(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	if err := s.engine.AdminReset(r.Context(), donationID); err != nil {
		respondEngineError(w, "admin_reset", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation reset to pending"})
}

func (s *Server) handleAdminAssign(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var req struct {
		OrganizationID string  `json:"organization_id"`
		Carrier        *string `json:"carrier"`
		TrackingNumber *string `json:"tracking_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid organization_id")
		return
	}

	if err := s.engine.AdminAssignOrganization(r.Context(), donationID, orgID, req.Carrier, req.TrackingNumber); err != nil {
		respondEngineError(w, "admin_assign", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Organization assigned"})
}

func (s *Server) handleListOrgDonations(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathUUID(r, "orgID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	views, err := s.engine.ListOrganizationViews(r.Context(), orgID)
	if err != nil {
		respondEngineError(w, "list_org_donations", err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleOrgApprove(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}
	orgID, ok := pathUUID(r, "orgID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req struct {
		Carrier        *string `json:"carrier"`
		TrackingNumber *string `json:"tracking_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	events, err := s.engine.OrgApprove(r.Context(), donationID, orgID, req.Carrier, req.TrackingNumber)
	if err != nil {
		respondEngineError(w, "org_approve", err)
		return
	}

	metrics.DonationsCompletedTotal.Inc()
	s.notifier.Dispatch(r.Context(), events)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation accepted"})
}

func (s *Server) handleOrgReject(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}
	orgID, ok := pathUUID(r, "orgID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	events, err := s.engine.OrgReject(r.Context(), donationID, orgID)
	if err != nil {
		respondEngineError(w, "org_reject", err)
		return
	}

	s.notifier.Dispatch(r.Context(), events)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Donation declined"})
}

func (s *Server) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := s.orgs.GetApproved(r.Context())
	if err != nil {
		respondEngineError(w, "list_organizations", err)
		return
	}

	type orgResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	resp := make([]orgResponse, 0, len(orgs))
	for _, org := range orgs {
		resp = append(resp, orgResponse{ID: org.ID.String(), Name: org.Name, Address: org.Address})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DonationID     string  `json:"donation_id"`
		Carrier        *string `json:"carrier"`
		TrackingNumber *string `json:"tracking_number"`
		SenderName     string  `json:"sender_name"`
		SenderPhone    string  `json:"sender_phone"`
		SenderAddress  string  `json:"sender_address"`
		ReceiverName   string  `json:"receiver_name"`
		ReceiverPhone  string  `json:"receiver_phone"`
		ReceiverAddr   string  `json:"receiver_address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	donationID, err := uuid.Parse(req.DonationID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid donation_id")
		return
	}

	// Resolve the donation first so an unknown id surfaces as 404 instead
	// of a foreign key violation.
	if _, err := s.engine.GetView(r.Context(), donationID); err != nil {
		respondEngineError(w, "create_delivery", err)
		return
	}

	created, err := s.deliveries.Create(r.Context(), delivery.CreateParams{
		DonationID:     donationID,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		SenderName:     req.SenderName,
		SenderPhone:    req.SenderPhone,
		SenderAddress:  req.SenderAddress,
		ReceiverName:   req.ReceiverName,
		ReceiverPhone:  req.ReceiverPhone,
		ReceiverAddr:   req.ReceiverAddr,
	})
	if err != nil {
		respondEngineError(w, "create_delivery", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Delivery created successfully",
		"id":      created.ID.String(),
	})
}

func (s *Server) handleGetDelivery(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	del, err := s.deliveries.GetByID(r.Context(), deliveryID)
	if err != nil {
		respondEngineError(w, "get_delivery", err)
		return
	}
	respondJSON(w, http.StatusOK, del)
}

func (s *Server) handleGetDonationDelivery(w http.ResponseWriter, r *http.Request) {
	donationID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	del, err := s.deliveries.GetByDonation(r.Context(), donationID)
	if err != nil {
		respondEngineError(w, "get_donation_delivery", err)
		return
	}
	respondJSON(w, http.StatusOK, del)
}

// handleListDeliveries lists deliveries in one shipment status, for the
// admin dashboard's carrier worklists.
func (s *Server) handleListDeliveries(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		respondError(w, http.StatusBadRequest, "Missing status query parameter")
		return
	}

	dels, err := s.deliveries.ListByStatus(r.Context(), repository.DeliveryStatus(status))
	if err != nil {
		respondEngineError(w, "list_deliveries", err)
		return
	}
	respondJSON(w, http.StatusOK, dels)
}

func (s *Server) handleListUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(r, "userID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	notifications, err := s.notifications.GetByUserID(r.Context(), userID, limit)
	if err != nil {
		respondEngineError(w, "list_user_notifications", err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleListDonorDeliveries(w http.ResponseWriter, r *http.Request) {
	donorID, ok := pathUUID(r, "userID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	dels, err := s.deliveries.ListByDonor(r.Context(), donorID)
	if err != nil {
		respondEngineError(w, "list_donor_deliveries", err)
		return
	}
	respondJSON(w, http.StatusOK, dels)
}

func (s *Server) handleUpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newStatus := repository.DeliveryStatus(req.Status)
	if err := s.deliveries.UpdateStatus(r.Context(), deliveryID, newStatus); err != nil {
		respondEngineError(w, "update_delivery_status", err)
		return
	}

	if newStatus == repository.DeliveryDelivered {
		metrics.DeliveriesDeliveredTotal.Inc()
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery status updated successfully"})
}

func (s *Server) handleUpdateDeliveryFields(w http.ResponseWriter, r *http.Request) {
	deliveryID, ok := pathUUID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	var req struct {
		Carrier        *string `json:"carrier"`
		TrackingNumber *string `json:"tracking_number"`
		ReceiverName   *string `json:"receiver_name"`
		ReceiverPhone  *string `json:"receiver_phone"`
		ReceiverAddr   *string `json:"receiver_address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.deliveries.UpdateFields(r.Context(), deliveryID, delivery.UpdateFieldsParams{
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		ReceiverName:   req.ReceiverName,
		ReceiverPhone:  req.ReceiverPhone,
		ReceiverAddr:   req.ReceiverAddr,
	})
	if err != nil {
		respondEngineError(w, "update_delivery_fields", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery updated successfully"})
}
