package models

import "time"

// Partner statuses. Partners are never hard-deleted; status carries lifecycle.
const (
	PartnerStatusActive  = "active"
	PartnerStatusBlocked = "blocked"
	PartnerStatusDeleted = "deleted"
)

// KYCDetails holds the partner's identity verification data.
type KYCDetails struct {
	Document  string `bson:"document" json:"document,omitempty"`
	LegalName string `bson:"legalName" json:"legalName,omitempty"`
	Status    string `bson:"status" json:"status,omitempty"` // e.g., "pending", "verified", "rejected"
}

// BankDetails holds the partner's payout account.
type BankDetails struct {
	AccountName   string `bson:"accountName" json:"accountName,omitempty"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber,omitempty"`
	IFSC          string `bson:"ifsc" json:"ifsc,omitempty"`
}

// Security holds credentials. Plaintext fields never touch the database.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Partner is a service-providing account, distinct from an end-customer.
type Partner struct {
	ID               string      `bson:"id" json:"id,omitempty"`
	Phone            string      `bson:"phone" json:"phone"`
	Email            string      `bson:"email" json:"email,omitempty"`
	Name             string      `bson:"name" json:"name,omitempty"`
	KYC              KYCDetails  `bson:"kyc" json:"kyc,omitzero"`
	Bank             BankDetails `bson:"bank" json:"bank,omitzero"`
	Security         Security    `bson:"security" json:"security,omitzero"`
	ProfileCompleted bool        `bson:"profileCompleted" json:"profileCompleted"`
	PhoneVerified    bool        `bson:"phoneVerified" json:"phoneVerified"`
	Status           string      `bson:"status" json:"status"`
	CategoryID       string      `bson:"categoryId" json:"categoryId,omitempty"`
	SubcategoryID    string      `bson:"subcategoryId" json:"subcategoryId,omitempty"`
	ServiceIDs       []string    `bson:"serviceIds" json:"serviceIds,omitempty"`
	FCMToken         string      `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt        time.Time   `bson:"updatedAt" json:"updatedAt,omitzero"`
}
