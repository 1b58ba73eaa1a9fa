package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	data := MessageData{
		CompanyName: "Acme",
		Title:       "Acme - Sağlık Taraması",
		Date:        "2024-05-01",
		Time:        "09:00-17:00 (8sa)",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "all placeholders",
			template: "{company} - {title} operasyonu {date} {time} icin planlandi.",
			want:     "Acme - Acme - Sağlık Taraması operasyonu 2024-05-01 09:00-17:00 (8sa) icin planlandi.",
		},
		{
			name:     "repeated placeholder",
			template: "{company} / {company}",
			want:     "Acme / Acme",
		},
		{
			name:     "no placeholders",
			template: "sabit mesaj",
			want:     "sabit mesaj",
		},
		{
			name:     "unknown placeholder kept verbatim",
			template: "{company} {plate}",
			want:     "Acme {plate}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.template, data))
		})
	}
}
