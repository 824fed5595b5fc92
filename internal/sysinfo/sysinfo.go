package sysinfo

import (
	"fmt"
	"strings"

	ps "github.com/mitchellh/go-ps"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const megabyte = 1024 * 1024

// Summary is a point-in-time description of the local machine.
type Summary struct {
	OS            string
	CPU           string
	MemoryUsedMB  uint64
	MemoryTotalMB uint64
	Processes     int
}

// Collect queries the local system. Fields that cannot be read keep their
// zero value and render as unknown.
func Collect() Summary {
	var s Summary
	if info, err := host.Info(); err == nil {
		s.OS = describeHost(info)
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		s.CPU = strings.TrimSpace(cpus[0].ModelName)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemoryUsedMB = vm.Used / megabyte
		s.MemoryTotalMB = vm.Total / megabyte
	}
	if procs, err := ps.Processes(); err == nil {
		s.Processes = len(procs)
	}
	return s
}

func describeHost(info *host.InfoStat) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{info.Platform, info.PlatformVersion} {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 && info.OS != "" {
		parts = append(parts, info.OS)
	}
	if info.KernelVersion != "" {
		parts = append(parts, "("+info.KernelVersion+")")
	}
	return strings.Join(parts, " ")
}

// String renders the summary one "Label: value" pair per line, OS first.
func (s Summary) String() string {
	osName := s.OS
	if osName == "" {
		osName = "Unknown OS"
	}
	cpuName := s.CPU
	if cpuName == "" {
		cpuName = "Unknown CPU"
	}
	lines := []string{
		"OS: " + osName,
		"CPU: " + cpuName,
		fmt.Sprintf("Memory: %d MB / %d MB", s.MemoryUsedMB, s.MemoryTotalMB),
		fmt.Sprintf("Processes: %d", s.Processes),
	}
	return strings.Join(lines, "\n")
}

// OSLine returns the first line of the summary.
func (s Summary) OSLine() string {
	line, _, _ := strings.Cut(s.String(), "\n")
	return line
}
