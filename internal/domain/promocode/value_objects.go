package promocode

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyCode            = errors.New("promo code is required")
	ErrEmptyLeadName        = errors.New("lead name is required")
	ErrEmptyProductInterest = errors.New("product interest is required")
	ErrEmptyContact         = errors.New("contact is required")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidStatus        = errors.New("invalid promo code status")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Code string

// NormalizeCode trims and upper-cases user input so lookups are case-insensitive.
func NormalizeCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Code(""), ErrEmptyCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

type Status string

const (
	StatusUnused Status = "unused"
	StatusUsed   Status = "used"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnused, StatusUsed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Lead is the customer information captured when a code is issued.
type Lead struct {
	name            string
	productInterest string
	contact         string
}

// NewLead validates the lead fields. A contact containing '@' is treated as an
// email address and must look like one; anything else is accepted as a phone
// number or free-form contact.
func NewLead(name, productInterest, contact string) (Lead, error) {
	name = strings.TrimSpace(name)
	productInterest = strings.TrimSpace(productInterest)
	contact = strings.TrimSpace(contact)

	if name == "" {
		return Lead{}, ErrEmptyLeadName
	}
	if productInterest == "" {
		return Lead{}, ErrEmptyProductInterest
	}
	if contact == "" {
		return Lead{}, ErrEmptyContact
	}
	if strings.Contains(contact, "@") && !emailRegex.MatchString(contact) {
		return Lead{}, ErrInvalidEmail
	}

	return Lead{name: name, productInterest: productInterest, contact: contact}, nil
}

func (l Lead) Name() string            { return l.name }
func (l Lead) ProductInterest() string { return l.productInterest }
func (l Lead) Contact() string         { return l.contact }
