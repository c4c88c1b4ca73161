package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^CMD-%s-\d{4}$`, time.Now().Format("20060102")))

	for i := 0; i < 50; i++ {
		number := GenerateOrderNumber("CMD")
		assert.Regexp(t, pattern, number)
	}
}

func TestGenerateOrderNumberUsesPrefix(t *testing.T) {
	assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, GenerateOrderNumber("ORD"))
}
