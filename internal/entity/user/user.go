package user

// ID is the opaque sender identifier handed over by the chat platform.
type ID string

func (id ID) String() string {
	return string(id)
}

// Contains reports whether id is already registered.
func Contains(users []ID, id ID) bool {
	for _, u := range users {
		if u == id {
			return true
		}
	}
	return false
}

// Dedupe drops repeated ids keeping the first occurrence order.
func Dedupe(users []ID) []ID {
	seen := make(map[ID]struct{}, len(users))
	res := make([]ID, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		res = append(res, u)
	}
	return res
}
