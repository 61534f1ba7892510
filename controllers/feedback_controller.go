package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/feedback"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

type FeedbackController struct {
	Feedback *feedback.Service
}

func NewFeedbackController(svc *feedback.Service) *FeedbackController {
	return &FeedbackController{Feedback: svc}
}

// SubmitFeedback validates and stores a feedback entry. Failures leave
// nothing persisted, so the client can simply retry.
func (fc *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	var input models.Feedback
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.UserID = middleware.UserID(c)

	entry, err := fc.Feedback.Submit(c.Context(), input)
	if errors.Is(err, feedback.ErrInvalid) {
		return utils.BadRequest(c, "Subject and description are required")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not submit feedback, please try again")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback submitted",
		"feedback": entry,
	})
}
