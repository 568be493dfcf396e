// Package httperr maps service-layer rule errors onto HTTP responses so the
// per-area handlers all speak the same status vocabulary.
package httperr

import (
	"log"

	"capstone-management/app/services"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a rule-error kind to an HTTP status.
func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindAlreadyTeamed, services.KindTeamFull,
		services.KindAlreadyMentored, services.KindTeamAlreadyHasProject:
		return fiber.StatusConflict
	case services.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}

// JSON writes the JSON error response for a service-layer failure. Unknown
// errors become a generic 500 without leaking internals.
func JSON(c *fiber.Ctx, err error) error {
	if re, ok := services.AsRuleError(err); ok {
		body := fiber.Map{"error": re.Message, "kind": string(re.Kind)}
		if len(re.SRNs) > 0 {
			body["srns"] = re.SRNs
		}
		if re.Kind == services.KindStoreUnavailable {
			log.Printf("store unavailable: %v", re.Unwrap())
		}
		return c.Status(statusFor(re.Kind)).JSON(body)
	}
	log.Printf("unhandled error: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
}
