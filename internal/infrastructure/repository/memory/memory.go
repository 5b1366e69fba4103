// Package memory holds the in-process entity store. All state lives in
// mutex-guarded maps seeded at startup and is lost on restart.
package memory

func removeID(orders []string, id string) []string {
	out := orders[:0]
	for _, candidate := range orders {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
