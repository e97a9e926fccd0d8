package roster

import "github.com/jonathan/consent-generator/internal/types"

// Upload loads a roster file into the session, replacing its participant list.
// On any load error the session is left untouched.
func Upload(session *types.Session, path string, c Classifier) (rows int, err error) {
	records, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	session.ReplaceParticipants(c.Classify(records))
	return len(records), nil
}
