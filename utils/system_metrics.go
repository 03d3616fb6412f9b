package utils

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	cpuUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	memUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_percent",
		Help: "Host memory usage percentage",
	})
)

// StartSystemMetrics samples host CPU and memory usage on an interval
// and exposes them as gauges.
func StartSystemMetrics(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
				cpuUsageGauge.Set(pct[0])
			} else if err != nil {
				log.Printf("Error sampling CPU usage: %v", err)
			}
			if vm, err := mem.VirtualMemory(); err == nil {
				memUsageGauge.Set(vm.UsedPercent)
			}
		}
	}()
}
