package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

func (handler *Handler) ListStudents(c *fiber.Ctx) error {
	students, err := handler.studentService.ListStudents()
	if err != nil {
		return handler.respondError(c, err, "failed to load students")
	}
	return c.JSON(students)
}

func (handler *Handler) UpdateStudent(c *fiber.Ctx) error {
	patch := services.StudentPatch{}
	if err := parseBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := handler.studentService.UpdateStudent(c.Params("id"), patch)
	if err != nil {
		return handler.respondError(c, err, "failed to update student")
	}
	return c.JSON(student)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userService.ListUsers()
	if err != nil {
		return handler.respondError(c, err, "failed to load users")
	}
	return c.JSON(users)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := services.CreateUserInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.userService.CreateUser(input)
	if err != nil {
		return handler.respondError(c, err, "failed to create user")
	}
	if session, ok := currentSession(c); ok {
		handler.logger.Info("staff account created", "user_id", user.ID, "role", user.Role, "by", session.UserID)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	patch := services.UserPatch{}
	if err := parseBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.userService.UpdateUser(c.Params("id"), patch)
	if err != nil {
		return handler.respondError(c, err, "failed to update user")
	}
	return c.JSON(user)
}
