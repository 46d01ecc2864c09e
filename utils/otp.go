package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// generateNumericOTP generates a secure random numeric OTP of the given length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendSMS delivers a message to the given phone number. Replace the body with
// the actual SMS provider integration; for now the outgoing message is logged.
func SendSMS(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}

// InitiatePartnerOTP generates an OTP, stores it in Redis with a 5-minute TTL
// and sends it to the partner's phone.
func InitiatePartnerOTP(partnerID, phoneNumber string) error {
	otp, err := generateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	otpKey := fmt.Sprintf("otp:partner:%s", partnerID)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate partner OTP")
	}

	message := fmt.Sprintf("Your Partnerhub OTP is: %s. It expires in 5 minutes.", otp)
	if err := SendSMS(phoneNumber, message); err != nil {
		GetLogger().Error("Failed to send OTP via SMS", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	return nil
}

// VerifyPartnerOTPRecord retrieves the stored OTP from Redis and compares it to
// the provided OTP. If they match, the OTP is deleted from the cache.
func VerifyPartnerOTPRecord(partnerID, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:partner:%s", partnerID)
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
