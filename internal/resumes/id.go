package resumes

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// NewID returns an id of the form resume_<unix millis>_<9 lowercase alphanumerics>.
func NewID(now time.Time) string {
	return "resume_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomSuffix()
}

func randomSuffix() string {
	var b strings.Builder
	for b.Len() < idSuffixLen {
		u := uuid.New()
		hi := uint64(0)
		for _, c := range u[:8] {
			hi = hi<<8 | uint64(c)
		}
		b.WriteString(strconv.FormatUint(hi, 36))
	}
	return b.String()[:idSuffixLen]
}
