package domain

// Object storage keys are derived from source IDs so repeated imports hit
// the same objects.

func ChannelThumbnailKey(sourceChannelID string) string {
	return "channels/" + sourceChannelID + "/thumbnail"
}

func ChannelBannerKey(sourceChannelID string) string {
	return "channels/" + sourceChannelID + "/banner"
}

func VideoThumbnailKey(externalVideoID string) string {
	return "videos/" + externalVideoID + "/thumbnail"
}
