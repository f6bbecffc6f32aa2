package model

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"
)

// ErrValidation marks any payload that fails the field constraints below.
// Handlers match it with errors.Is to answer 400 instead of 500.
var ErrValidation = errors.New("validation failed")

var (
	clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,50}$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Client is the full persisted record for one tenant: the review-page detail
// fields plus the ordered review list, newest first.
type Client struct {
	ClientID         string   `json:"clientId"`
	ClientName       string   `json:"clientName"`
	GoogleReviewLink string   `json:"googleReviewLink"`
	LogoURL          string   `json:"logoUrl"`
	PrimaryColor     string   `json:"primaryColor"`
	SecondaryColor   string   `json:"secondaryColor"`
	Reviews          []string `json:"reviews"`
}

// ClientDetails is the caller-supplied portion of a client document. The store
// always forces clientId from the request path, never from this payload.
type ClientDetails struct {
	ClientName       string `json:"clientName"`
	GoogleReviewLink string `json:"googleReviewLink"`
	LogoURL          string `json:"logoUrl"`
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
}

// ClientDetail is the projection returned by detail views: everything except
// the review list.
type ClientDetail struct {
	ClientID         string `json:"clientId"`
	ClientName       string `json:"clientName"`
	GoogleReviewLink string `json:"googleReviewLink"`
	LogoURL          string `json:"logoUrl"`
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
}

type ClientSummary struct {
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
}

// SeedFile is the shape of a seed document: a bare reviews array used once at
// client-creation time.
type SeedFile struct {
	Reviews []string `json:"reviews"`
}

type CreateClientRequest struct {
	ClientID string `json:"clientId"`
	ClientDetails
	SeedFile string `json:"seedFile,omitempty"`
}

type ReviewRequest struct {
	ClientID string `json:"clientId"`
	Review   string `json:"review"`
}

type ReviewResponse struct {
	Review string `json:"review"`
}

// Detail returns the reviews-free projection of c.
func (c *Client) Detail() ClientDetail {
	return ClientDetail{
		ClientID:         c.ClientID,
		ClientName:       c.ClientName,
		GoogleReviewLink: c.GoogleReviewLink,
		LogoURL:          c.LogoURL,
		PrimaryColor:     c.PrimaryColor,
		SecondaryColor:   c.SecondaryColor,
	}
}

func ValidateClientID(id string) error {
	if !clientIDPattern.MatchString(id) {
		return fmt.Errorf("%w: clientId must be 3-50 alphanumeric characters", ErrValidation)
	}
	return nil
}

func ValidateReview(text string) error {
	if n := utf8.RuneCountInString(text); n < 5 || n > 500 {
		return fmt.Errorf("%w: review must be 5-500 characters", ErrValidation)
	}
	return nil
}

func (d ClientDetails) Validate() error {
	if n := utf8.RuneCountInString(d.ClientName); n < 3 || n > 100 {
		return fmt.Errorf("%w: clientName must be 3-100 characters", ErrValidation)
	}
	if !isAbsoluteURL(d.GoogleReviewLink) {
		return fmt.Errorf("%w: googleReviewLink must be an absolute URL", ErrValidation)
	}
	if d.LogoURL != "" && !isAbsoluteURL(d.LogoURL) {
		return fmt.Errorf("%w: logoUrl must be an absolute URL or empty", ErrValidation)
	}
	if !hexColorPattern.MatchString(d.PrimaryColor) {
		return fmt.Errorf("%w: primaryColor must be a #RRGGBB hex color", ErrValidation)
	}
	if !hexColorPattern.MatchString(d.SecondaryColor) {
		return fmt.Errorf("%w: secondaryColor must be a #RRGGBB hex color", ErrValidation)
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
