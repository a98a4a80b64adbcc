// Package bootstrap brings a Vulkan-style driver from nothing to a logical
// device with a graphics queue: it snapshots the instance extensions and
// layers on offer, checks them against what the application and windowing
// layer need, creates the instance (and a debug messenger in diagnostics
// mode), picks the first physical device with a graphics queue family and
// creates a logical device on it.
//
// The package talks to the driver only through GlobalDriver and the
// interfaces it hands out, so it can be driven by vkngdriver on real
// hardware or by an in-memory fake in tests.
package bootstrap
