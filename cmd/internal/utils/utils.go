package utils

import (
	"reflect"
	"strings"
	"time"
)

// ISOMillis is the layout for every stored createdAt/timestamp value.
// Millisecond precision, so records created moments apart still sort.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// NowISO returns the current UTC time as an ISO-8601 string, which is how
// every createdAt/timestamp column is stored.
func NowISO() string {
	return time.Now().
		UTC().
		Format(ISOMillis)
}

// Sanitize trims every string field of the given request struct in place.
// Optional fields are *string; nil pointers are left alone.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
