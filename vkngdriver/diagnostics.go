package vkngdriver

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

type diagnostics struct {
	driver ext_debug_utils.ExtensionDriver
}

func (d *diagnostics) CreateSink(options bootstrap.SinkOptions) (bootstrap.Sink, error) {
	messenger, _, err := d.driver.CreateDebugUtilsMessenger(nil, messengerCreateInfo(options))
	if err != nil {
		return nil, err
	}
	return messenger, nil
}

func (d *diagnostics) DestroySink(sink bootstrap.Sink) {
	messenger, ok := sink.(ext_debug_utils.DebugUtilsMessenger)
	if !ok || !messenger.Initialized() {
		return
	}
	d.driver.DestroyDebugUtilsMessenger(messenger, nil)
}

func messengerCreateInfo(options bootstrap.SinkOptions) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := options.Callback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: messageSeverity(options.Filter.Severities),
		MessageType:     messageType(options.Filter.MessageTypes),
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			msg := bootstrap.Message{
				Severity: severityFromVk(severity),
				Type:     typeFromVk(msgType),
			}
			if data != nil {
				msg.MessageName = data.MessageIDName
				msg.Text = data.Message
			}
			return callback(msg)
		},
	}
}

var severityBits = []struct {
	vk   ext_debug_utils.DebugUtilsMessageSeverityFlags
	flag bootstrap.Severity
}{
	{ext_debug_utils.SeverityVerbose, bootstrap.SeverityVerbose},
	{ext_debug_utils.SeverityInfo, bootstrap.SeverityInfo},
	{ext_debug_utils.SeverityWarning, bootstrap.SeverityWarning},
	{ext_debug_utils.SeverityError, bootstrap.SeverityError},
}

var typeBits = []struct {
	vk   ext_debug_utils.DebugUtilsMessageTypeFlags
	flag bootstrap.MessageType
}{
	{ext_debug_utils.TypeGeneral, bootstrap.MessageGeneral},
	{ext_debug_utils.TypeValidation, bootstrap.MessageValidation},
	{ext_debug_utils.TypePerformance, bootstrap.MessagePerformance},
}

func messageSeverity(s bootstrap.Severity) ext_debug_utils.DebugUtilsMessageSeverityFlags {
	var out ext_debug_utils.DebugUtilsMessageSeverityFlags
	for _, bit := range severityBits {
		if s&bit.flag != 0 {
			out |= bit.vk
		}
	}
	return out
}

func severityFromVk(s ext_debug_utils.DebugUtilsMessageSeverityFlags) bootstrap.Severity {
	var out bootstrap.Severity
	for _, bit := range severityBits {
		if s&bit.vk != 0 {
			out |= bit.flag
		}
	}
	return out
}

func messageType(t bootstrap.MessageType) ext_debug_utils.DebugUtilsMessageTypeFlags {
	var out ext_debug_utils.DebugUtilsMessageTypeFlags
	for _, bit := range typeBits {
		if t&bit.flag != 0 {
			out |= bit.vk
		}
	}
	return out
}

func typeFromVk(t ext_debug_utils.DebugUtilsMessageTypeFlags) bootstrap.MessageType {
	var out bootstrap.MessageType
	for _, bit := range typeBits {
		if t&bit.vk != 0 {
			out |= bit.flag
		}
	}
	return out
}

var queueBits = []struct {
	vk   core1_0.QueueFlags
	flag bootstrap.QueueFlags
}{
	{core1_0.QueueGraphics, bootstrap.QueueGraphics},
	{core1_0.QueueCompute, bootstrap.QueueCompute},
	{core1_0.QueueTransfer, bootstrap.QueueTransfer},
	{core1_0.QueueSparseBinding, bootstrap.QueueSparseBinding},
}

func queueFlags(flags core1_0.QueueFlags) bootstrap.QueueFlags {
	var out bootstrap.QueueFlags
	for _, bit := range queueBits {
		if flags&bit.vk != 0 {
			out |= bit.flag
		}
	}
	return out
}

func deviceType(t core1_0.PhysicalDeviceType) bootstrap.DeviceType {
	switch t {
	case core1_0.PhysicalDeviceTypeIntegratedGPU:
		return bootstrap.DeviceTypeIntegratedGPU
	case core1_0.PhysicalDeviceTypeDiscreteGPU:
		return bootstrap.DeviceTypeDiscreteGPU
	case core1_0.PhysicalDeviceTypeVirtualGPU:
		return bootstrap.DeviceTypeVirtualGPU
	case core1_0.PhysicalDeviceTypeCPU:
		return bootstrap.DeviceTypeCPU
	}
	return bootstrap.DeviceTypeOther
}
