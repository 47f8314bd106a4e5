package service

import (
	"echo-journal/config"
	"echo-journal/logger"
	"echo-journal/web/entity"
	"echo-journal/web/middleware"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type ServerService struct{}

// Status reports host and process health for the admin dashboard.
// Individual probe failures are logged and leave the field zeroed.
func (s *ServerService) Status() *entity.ServerStatus {
	status := &entity.ServerStatus{
		Requests: middleware.HandledRequests(),
		Version:  config.GetVersion(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	return status
}
