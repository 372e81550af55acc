package paymentValidator

import (
	"regexp"
	"strings"
	"talenta/middleware"

	"github.com/gofiber/fiber/v2"
)

var amountRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// CreateIntentRequest is the validated payment-intent body.
type CreateIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreatePaymentRequest is the validated payment-record body.
type CreatePaymentRequest struct {
	CourseId         uint   `json:"courseId"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	Method           string `json:"method"`
	GatewayPaymentId string `json:"gatewayPaymentId"`
}

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateIntentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Amount <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"amount": "Amount must be greater than 0!",
			})
		}

		// Default currency is USD
		reqData.Currency = strings.ToLower(strings.TrimSpace(reqData.Currency))
		if reqData.Currency == "" {
			reqData.Currency = "usd"
		}
		if len(reqData.Currency) != 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"currency": "Currency must be a 3-letter code!",
			})
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseId == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if !amountRe.MatchString(reqData.Amount) {
			errors["amount"] = "Amount must be a decimal amount, e.g. 10.00!"
		}
		if strings.TrimSpace(reqData.Currency) == "" {
			errors["currency"] = "Currency is required!"
		}
		if strings.TrimSpace(reqData.Method) == "" {
			errors["method"] = "Payment method is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
