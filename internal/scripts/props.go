package scripts

func readFloat(data map[string]any, key string, dst *float32) {
	switch n := data[key].(type) {
	case float64:
		*dst = float32(n)
	case float32:
		*dst = n
	case int:
		*dst = float32(n)
	}
}

func readInt(data map[string]any, key string, dst *int) {
	switch n := data[key].(type) {
	case int:
		*dst = n
	case float64:
		*dst = int(n)
	}
}
