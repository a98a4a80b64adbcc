package bootstrap

const (
	DebugUtilsExtensionName    = "VK_EXT_debug_utils"
	KhronosValidationLayerName = "VK_LAYER_KHRONOS_validation"
)

// ResolveExtensions returns the instance extensions the context must enable:
// the windowing layer's list, plus the debug utils extension when diagnostics
// are on.
func ResolveExtensions(diagnostics bool, windowing []string) []string {
	extensions := make([]string, 0, len(windowing)+1)
	extensions = append(extensions, windowing...)
	if diagnostics {
		extensions = append(extensions, DebugUtilsExtensionName)
	}
	return extensions
}

// ResolveLayers returns the instance layers the context must enable.
func ResolveLayers(diagnostics bool) []string {
	if !diagnostics {
		return nil
	}
	return []string{KhronosValidationLayerName}
}
