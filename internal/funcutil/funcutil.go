package funcutil

// JoinCancels joins multiple cancel callbacks into one. The callbacks are
// called in order.
func JoinCancels(cancellers ...func()) func() {
	return func() {
		for _, c := range cancellers {
			c()
		}
	}
}
