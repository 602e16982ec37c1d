package floor

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// BenchmarkDecode measures decoding a representative Floor Granted
// packet: duration, priority, granted party identity with padding, and
// a floor indicator.
func BenchmarkDecode(b *testing.B) {
	logrus.SetLevel(logrus.WarnLevel)
	buf := packet(0x11,
		103, 2, 0x00, 0x3C,
		102, 1, 1,
		106, 5, 'a', 'l', 'i', 'c', 'e', 0x00, 0x00, 0x00,
		116, 2, 0x80, 0x00,
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(buf); err != nil {
			b.Fatal(err)
		}
	}
}
