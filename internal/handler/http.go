package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/amaumene/trackarr/internal/domain"
	"github.com/amaumene/trackarr/internal/service"
	"github.com/amaumene/trackarr/internal/settings"
)

type HTTPHandler struct {
	svc *service.Config
}

func NewHTTPHandler(svc *service.Config) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func (h *HTTPHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.handleHealth)
	app.Get("/settings", h.handleSettingsPage)
	app.Get("/api/settings/:key", h.handleGet)
	app.Put("/api/settings/:key", h.handleSet)
}

func (h *HTTPHandler) handleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (h *HTTPHandler) handleGet(c *fiber.Ctx) error {
	key := c.Params("key")

	value, err := h.svc.Get(c.Context(), key)
	if err != nil {
		return h.writeError(c, key, err)
	}

	return c.JSON(fiber.Map{"key": key, "value": value})
}

func (h *HTTPHandler) handleSet(c *fiber.Ctx) error {
	key := c.Params("key")

	var value any
	if err := json.Unmarshal(c.Body(), &value); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body is not valid json",
		})
	}

	if err := h.svc.Set(c.Context(), key, value); err != nil {
		return h.writeError(c, key, err)
	}

	return c.JSON(fiber.Map{"key": key, "value": value})
}

type settingRow struct {
	Key   string
	Value string
	Error string
}

func (h *HTTPHandler) handleSettingsPage(c *fiber.Ctx) error {
	keys := h.svc.Keys()
	rows := make([]settingRow, 0, len(keys))

	for _, key := range keys {
		row := settingRow{Key: key}
		value, err := h.svc.Get(c.Context(), key)
		if err != nil {
			row.Error = err.Error()
		} else {
			row.Value = renderValue(value)
		}
		rows = append(rows, row)
	}

	return c.Render("settings", fiber.Map{
		"Instance": h.svc.Name(),
		"Settings": rows,
	})
}

func renderValue(value any) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		var list domain.PathFragmentList
		if err := settings.Decode(v, &list); err == nil {
			return renderFragmentList(list)
		}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}

func renderFragmentList(list domain.PathFragmentList) string {
	mode := "blacklist"
	if list.Whitelist {
		mode = "whitelist"
	}
	if len(list.PathFragments) == 0 {
		return mode + ": (empty)"
	}

	names := make([]string, len(list.PathFragments))
	for i, fragment := range list.PathFragments {
		names[i] = fragment.Data
	}
	return fmt.Sprintf("%s: %s", mode, strings.Join(names, ", "))
}

func (h *HTTPHandler) writeError(c *fiber.Ctx, key string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownSettingKey):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrShapeMismatch):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		log.WithFields(log.Fields{
			"setting": key,
			"error":   err,
		}).Error("settings request failed")
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
