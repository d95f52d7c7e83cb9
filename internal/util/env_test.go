package util

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ONCOGRAPH_TEST_KEY", "value")
	if got := GetEnv("ONCOGRAPH_TEST_KEY"); got != "value" {
		t.Errorf("GetEnv() = %q, want %q", got, "value")
	}
	if got := GetEnv("ONCOGRAPH_TEST_MISSING"); got != "" {
		t.Errorf("GetEnv(missing) = %q, want empty", got)
	}
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("ONCOGRAPH_TEST_KEY", "value")
	if got := GetEnvString("ONCOGRAPH_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnvString() = %q, want %q", got, "value")
	}
	if got := GetEnvString("ONCOGRAPH_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString(missing) = %q, want fallback", got)
	}
}

func TestGetEnvNumeric(t *testing.T) {
	t.Setenv("ONCOGRAPH_TEST_NUM", "15")
	if got := GetEnvNumeric("ONCOGRAPH_TEST_NUM", 3); got != 15 {
		t.Errorf("GetEnvNumeric() = %v, want 15", got)
	}
	t.Setenv("ONCOGRAPH_TEST_NUM", "not-a-number")
	if got := GetEnvNumeric("ONCOGRAPH_TEST_NUM", 3); got != 3 {
		t.Errorf("GetEnvNumeric(malformed) = %v, want default 3", got)
	}
	if got := GetEnvNumeric("ONCOGRAPH_TEST_MISSING", 3); got != 3 {
		t.Errorf("GetEnvNumeric(missing) = %v, want default 3", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ONCOGRAPH_TEST_BOOL", "true")
	if !GetEnvBool("ONCOGRAPH_TEST_BOOL", false) {
		t.Error("GetEnvBool(true) = false")
	}
	t.Setenv("ONCOGRAPH_TEST_BOOL", "yes")
	if GetEnvBool("ONCOGRAPH_TEST_BOOL", false) {
		t.Error("GetEnvBool(malformed) should fall back to the default")
	}
	if GetEnvBool("ONCOGRAPH_TEST_MISSING", false) {
		t.Error("GetEnvBool(missing) should fall back to the default")
	}
}
