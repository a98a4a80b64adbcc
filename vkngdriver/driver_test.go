package vkngdriver

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

func TestInstanceCreateInfo_Plain(t *testing.T) {
	info := instanceCreateInfo(bootstrap.InstanceCreateInfo{
		ApplicationName:       "Hello Triangle",
		ApplicationVersion:    bootstrap.Version{Major: 1, Minor: 2, Patch: 3},
		EngineName:            "No Engine",
		EnabledExtensionNames: []string{"VK_KHR_surface"},
	})

	assert.Equal(t, "Hello Triangle", info.ApplicationName)
	assert.Equal(t, common.CreateVersion(1, 2, 3), info.ApplicationVersion)
	assert.Equal(t, common.Vulkan1_2, info.APIVersion)
	assert.Equal(t, []string{"VK_KHR_surface"}, info.EnabledExtensionNames)
	assert.Zero(t, info.Flags&khr_portability_enumeration.InstanceCreateEnumeratePortability)
	assert.Nil(t, info.Next)
}

func TestInstanceCreateInfo_PortabilityFlagFollowsExtension(t *testing.T) {
	info := instanceCreateInfo(bootstrap.InstanceCreateInfo{
		EnabledExtensionNames: []string{"VK_KHR_surface", khr_portability_enumeration.ExtensionName},
	})

	assert.NotZero(t, info.Flags&khr_portability_enumeration.InstanceCreateEnumeratePortability)
}

func TestInstanceCreateInfo_ChainsMessenger(t *testing.T) {
	var got []bootstrap.Message
	sink := bootstrap.SinkOptions{
		Filter: bootstrap.DefaultSinkFilter,
		Callback: func(msg bootstrap.Message) bool {
			got = append(got, msg)
			return false
		},
	}

	info := instanceCreateInfo(bootstrap.InstanceCreateInfo{
		EnabledExtensionNames: []string{ext_debug_utils.ExtensionName},
		EnabledLayerNames:     []string{bootstrap.KhronosValidationLayerName},
		Diagnostics:           &sink,
	})

	messenger, ok := info.Next.(ext_debug_utils.DebugUtilsMessengerCreateInfo)
	require.True(t, ok, "Next is %T", info.Next)
	assert.Equal(t, ext_debug_utils.SeverityInfo|ext_debug_utils.SeverityWarning|ext_debug_utils.SeverityError, messenger.MessageSeverity)
	assert.Equal(t, []string{bootstrap.KhronosValidationLayerName}, info.EnabledLayerNames)

	messenger.UserCallback(ext_debug_utils.TypeGeneral, ext_debug_utils.SeverityError, &ext_debug_utils.DebugUtilsMessengerCallbackData{
		Message: "vkCreateInstance: bad layer",
	})
	require.Len(t, got, 1)
	assert.Equal(t, bootstrap.SeverityError, got[0].Severity)
}

func TestDiagnostics_UnsupportedWithoutDebugUtils(t *testing.T) {
	instance := &InstanceDriver{extensions: bootstrap.NewCapabilitySet("VK_KHR_surface")}

	provider, err := instance.Diagnostics()
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.True(t, errors.Is(err, bootstrap.ErrDiagnosticsUnsupported))
	assert.Contains(t, err.Error(), ext_debug_utils.ExtensionName)
}

type foreignSink struct{}

func (foreignSink) Initialized() bool { return true }

func TestDestroySink_SkipsForeignAndUninitialized(t *testing.T) {
	// No extension driver: any destroy call would panic.
	provider := &diagnostics{}

	assert.NotPanics(t, func() { provider.DestroySink(foreignSink{}) })

	var messenger ext_debug_utils.DebugUtilsMessenger
	assert.NotPanics(t, func() { provider.DestroySink(messenger) })
}
