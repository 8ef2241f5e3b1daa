package settings

import (
	"testing"

	"uvctl/internal/config"
)

func TestValuesRoundTrip(t *testing.T) {
	c := config.Default()
	c.Timeouts.InstallVersion = 900
	v := fromConfig(c)
	if v.installTimeout != "900" || v.listTimeout != "0" {
		t.Fatalf("timeouts = %q/%q", v.installTimeout, v.listTimeout)
	}
	v.tool = "  /opt/uv  "
	v.theme = "light"
	v.nerdFont = true
	v.listTimeout = "45"
	got := v.apply(c)
	if got.Tool != "/opt/uv" || got.UI.Theme != "light" || !got.UI.NerdFont {
		t.Fatalf("apply = %+v", got)
	}
	if got.Timeouts.ListAvailable != 45 || got.Timeouts.InstallVersion != 900 {
		t.Fatalf("timeouts = %+v", got.Timeouts)
	}
}

func TestApplyKeepsToolWhenBlank(t *testing.T) {
	c := config.Default()
	v := fromConfig(c)
	v.tool = " "
	if got := v.apply(c); got.Tool != "uv" {
		t.Fatalf("tool = %q", got.Tool)
	}
}

func TestValidSeconds(t *testing.T) {
	for _, s := range []string{"0", "30", " 7 "} {
		if err := validSeconds(s); err != nil {
			t.Errorf("validSeconds(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "-1", "abc", "1.5"} {
		if err := validSeconds(s); err == nil {
			t.Errorf("validSeconds(%q) = nil", s)
		}
	}
}
