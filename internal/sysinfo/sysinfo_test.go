package sysinfo

import (
	"strings"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func TestSummaryStringUnknowns(t *testing.T) {
	got := Summary{}.String()
	want := "OS: Unknown OS\nCPU: Unknown CPU\nMemory: 0 MB / 0 MB\nProcesses: 0"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSummaryOSLine(t *testing.T) {
	s := Summary{OS: "debian 12", CPU: "Ryzen", MemoryUsedMB: 512, MemoryTotalMB: 2048, Processes: 42}
	if got := s.OSLine(); got != "OS: debian 12" {
		t.Fatalf("expected OS line, got %q", got)
	}
	if !strings.Contains(s.String(), "Memory: 512 MB / 2048 MB") {
		t.Fatalf("expected memory line, got %q", s.String())
	}
}

func TestDescribeHost(t *testing.T) {
	got := describeHost(&host.InfoStat{Platform: "ubuntu", PlatformVersion: "24.04", KernelVersion: "6.8.0"})
	if got != "ubuntu 24.04 (6.8.0)" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := describeHost(&host.InfoStat{OS: "linux"}); got != "linux" {
		t.Fatalf("expected OS fallback, got %q", got)
	}
}

func TestCollectDoesNotPanic(t *testing.T) {
	s := Collect()
	if !strings.HasPrefix(s.String(), "OS: ") {
		t.Fatalf("expected OS line first, got %q", s.String())
	}
}
