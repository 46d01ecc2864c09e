// File: handlers/bundle.go
package handlers

import (
	partnerRepo "partnerhub/database/repository/partner"
)

// HandlerBundle carries every wired handler plus the repositories the route
// middleware needs.
type HandlerBundle struct {
	PartnerRepo partnerRepo.PartnerRepository

	Partner      *PartnerHandler
	Product      *ProductHandler
	Pricing      *PricingHandler
	Schedule     *ScheduleHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Payment      *PaymentHandler
}
