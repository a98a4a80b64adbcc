package bootstrap

// QueueFamilyIndices holds the queue family indices a device was resolved
// to. A nil field means no family qualified.
type QueueFamilyIndices struct {
	GraphicsFamily *int
}

func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil
}

// FindGraphicsFamily returns the index of the first queue family of device
// that supports graphics, or nil if there is none.
func FindGraphicsFamily(driver InstanceDriver, device PhysicalDevice) *int {
	return findFamily(driver.QueueFamilies(device), QueueGraphics)
}

func findFamily(families []QueueFamily, required QueueFlags) *int {
	for queueFamilyIdx, queueFamily := range families {
		if queueFamily.QueueFlags&required != 0 {
			idx := queueFamilyIdx
			return &idx
		}
	}
	return nil
}

func findQueueFamilies(driver InstanceDriver, device PhysicalDevice) QueueFamilyIndices {
	return QueueFamilyIndices{
		GraphicsFamily: FindGraphicsFamily(driver, device),
	}
}
