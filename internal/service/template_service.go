// internal/service/template_service.go
package service

import (
    "strings"
)

// RenderTemplate fills {placeholder} tokens in message bodies: recipient
// names, order numbers, template links, start dates.
func RenderTemplate(template string, data map[string]string) string {
    result := template
    for k, v := range data {
        result = strings.ReplaceAll(result, "{"+k+"}", v)
    }
    return result
}
