package services

import "fmt"

// FormatBRL renders centavos as "R$ 12.34". The site has always shown a
// dot separator in WhatsApp messages, so no locale formatting here.
func FormatBRL(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, centavos/100, centavos%100)
}
