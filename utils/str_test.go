package utils

import (
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestGbkToUtf8(t *testing.T) {
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("温度"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := GbkToUtf8(raw)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "温度" {
		t.Fatalf("got %q", d)
	}
}

func TestPurifyForUtf8(t *testing.T) {
	if got := PurifyForUtf8("Temp\x00erature"); got != "Temperature" {
		t.Fatalf("got %q", got)
	}
	if got := PurifyForUtf8("ok\xffok"); got != "okok" {
		t.Fatalf("got %q", got)
	}
}
