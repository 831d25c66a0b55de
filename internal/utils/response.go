package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint responds with. CorrelationID
// mirrors the X-Correlation-ID header so clients that only capture bodies can
// still cross-reference server logs.
type APIResponse struct {
	Success       bool        `json:"success"`
	Data          interface{} `json:"data,omitempty"`
	Message       string      `json:"message"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

func envelope(c *fiber.Ctx, success bool, message string, data interface{}) APIResponse {
	id, _ := c.Locals("correlation_id").(string)
	return APIResponse{
		Success:       success,
		Data:          data,
		Message:       message,
		CorrelationID: id,
	}
}

// SendSuccess writes a 200 success envelope.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendSuccessWithStatus writes a success envelope with an explicit status.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	if message == "" {
		message = "success"
	}

	return c.Status(status).JSON(envelope(c, true, message, data))
}

// SendError writes a failure envelope with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(envelope(c, false, message, nil))
}
