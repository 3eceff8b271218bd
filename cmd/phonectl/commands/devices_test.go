package commands

import (
	"bytes"
	"testing"

	"phonectl/internal/domain"
)

func TestWriteDeviceTable_AlignsWideLabels(t *testing.T) {
	var buf bytes.Buffer
	writeDeviceTable(&buf, map[domain.Address]domain.Label{
		"10.0.0.2:5555": "手机",
		"10.0.0.1:5555": "Pixel",
	}, "10.0.0.2:5555")

	want := "  LABEL  ADDRESS\n" +
		"  Pixel  10.0.0.1:5555\n" +
		"* 手机   10.0.0.2:5555\n"
	if got := buf.String(); got != want {
		t.Fatalf("table:\n%s\nwant:\n%s", got, want)
	}
}

func TestPickDevice(t *testing.T) {
	devices := []domain.LiveDevice{
		{Serial: "A", State: domain.DeviceReady, Model: "Pixel_7"},
		{Serial: "B", State: domain.DeviceReady, Model: "SM_A515F"},
	}

	cmd := newRootCmd()
	got, err := pickDevice(cmd, devices, "B")
	if err != nil || got.Serial != "B" {
		t.Fatalf("pickDevice by serial = %+v, %v", got, err)
	}
	if _, err := pickDevice(cmd, devices, "C"); err == nil {
		t.Fatalf("expected unknown serial to fail")
	}
	if _, err := pickDevice(cmd, nil, ""); err == nil {
		t.Fatalf("expected no devices to fail")
	}
	got, err = pickDevice(cmd, devices[:1], "")
	if err != nil || got.Serial != "A" {
		t.Fatalf("pickDevice single = %+v, %v", got, err)
	}
}
