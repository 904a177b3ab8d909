package console

import (
	"context"
	"strconv"
	"strings"

	"seller-console/internal/domain"
	"seller-console/internal/gateway/logistics"
	"seller-console/internal/logx"
)

// Placeholder pair returned when a pincode cannot be resolved.
const (
	placeholderCity  = "City"
	placeholderState = "State"
)

// ResolveLocation asks the backend for the city/state of a postal code. It
// never fails to the caller: on any failure kind it emits exactly one
// notification and returns the placeholder pair.
func (s *Session) ResolveLocation(ctx context.Context, pincode string) domain.Location {
	fallback := domain.Location{City: placeholderCity, State: placeholderState}

	code, err := strconv.Atoi(strings.TrimSpace(pincode))
	if err != nil {
		s.notifier.Failure("Error", "Unable to fetch city and state for the given pincode")
		return fallback
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	loc, err := s.gw.ResolvePincode(opCtx, code)
	if err != nil {
		s.logger.Warn("pincode resolution failed",
			logx.String("pincode", pincode),
			logx.Any("err", err),
		)
		s.notifier.Failure("Error", "Unable to fetch city and state for the given pincode")
		return fallback
	}
	return loc
}

// CreateHub registers a new pickup location and re-reads the hub list.
func (s *Session) CreateHub(ctx context.Context, draft HubDraft) bool {
	payload, err := BuildHubPayload(draft)
	if err != nil {
		s.logger.Warn("hub draft rejected", logx.Any("err", err))
		s.notifier.Failure("Error", "Something went wrong. Please try again later.")
		return false
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.gw.CreateHub(opCtx, payload); err != nil {
		s.notifier.Failure("Error", "Something went wrong. Please try again later.")
		return false
	}

	s.notifier.Success("Hub created successfully", "Hub has been created successfully")
	s.RefreshHubs(ctx)
	return true
}

// UpdateHub edits an existing pickup location; the hub id travels in the URL
// path rather than the body.
func (s *Session) UpdateHub(ctx context.Context, id string, draft PickupLocationDraft) bool {
	payload, err := BuildUpdateHubPayload(draft)
	if err != nil {
		s.logger.Warn("pickup location draft rejected", logx.Any("err", err))
		s.notifier.Failure("Error", failureDescription(err, "Something went wrong"))
		return false
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.gw.UpdateHub(opCtx, id, payload); err != nil {
		s.notifier.Failure("Error", failureDescription(err, "Something went wrong"))
		return false
	}

	s.notifier.Success("Success", "Pickup Location updated successfully.")
	s.RefreshHubs(ctx)
	return true
}

// UpdateCompanyProfile PUTs the company field group. A malformed email is
// rejected before any request is sent.
func (s *Session) UpdateCompanyProfile(ctx context.Context, draft CompanyProfileDraft) bool {
	body, err := BuildCompanyProfileBody(draft)
	if err != nil {
		s.notifier.Failure("Invalid email.", "")
		return false
	}
	return s.updateSeller(ctx, body, "Company Profile updated successfully.")
}

// UpdateBankDetails PUTs the payout field group.
func (s *Session) UpdateBankDetails(ctx context.Context, d domain.BankDetails) bool {
	body := logistics.BankDetailsBody{
		BankDetails: logistics.BankDetailsFields{
			AccHolderName: d.AccHolderName,
			AccType:       d.AccType,
			AccNumber:     d.AccNumber,
			IFSCNumber:    d.IFSCNumber,
		},
	}
	return s.updateSeller(ctx, body, "Bank Details submitted successfully.")
}

// UpdateBillingAddress PUTs the billing field group.
func (s *Session) UpdateBillingAddress(ctx context.Context, d domain.BillingAddress) bool {
	body := logistics.BillingAddressBody{
		BillingAddress: logistics.BillingAddressFields{
			AddressLine1: d.AddressLine1,
			AddressLine2: d.AddressLine2,
			Pincode:      d.Pincode,
			City:         d.City,
			State:        d.State,
			Phone:        d.Phone,
		},
	}
	return s.updateSeller(ctx, body, "Billing Address updated successfully.")
}

// UpdateGSTInvoice PUTs the GST/invoicing field group.
func (s *Session) UpdateGSTInvoice(ctx context.Context, d domain.GSTInvoice) bool {
	body := logistics.GSTInvoiceBody{
		GSTInvoice: logistics.GSTInvoiceFields{
			GSTIN:     d.GSTIN,
			TAN:       d.TAN,
			DeductTDS: d.DeductTDS,
		},
	}
	return s.updateSeller(ctx, body, "GSTIN Details updated successfully.")
}

func (s *Session) updateSeller(ctx context.Context, body any, successMsg string) bool {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.gw.UpdateSeller(opCtx, body); err != nil {
		s.notifier.Failure("Error", failureDescription(err, "Something went wrong"))
		return false
	}
	s.notifier.Success("Success", successMsg)
	return true
}
