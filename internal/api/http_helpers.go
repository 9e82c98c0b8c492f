package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func sendOK(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(fiber.Map{"ok": true})
}

// decodeJSONBody unmarshals the request body into target. An empty body is
// treated as an empty object so a bare POST still creates an all-null row.
func decodeJSONBody(c *fiber.Ctx, target any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, target)
}

// payloadID pulls the id out of a decoded JSON object. JSON numbers arrive
// as float64; numeric strings are accepted too.
func payloadID(payload map[string]any) (int64, bool) {
	switch value := payload["id"].(type) {
	case float64:
		if value == 0 {
			return 0, false
		}
		return int64(value), true
	case string:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil || id == 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func queryID(c *fiber.Ctx) (int64, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func todayUTC() string {
	return time.Now().UTC().Format(dayLayout)
}
