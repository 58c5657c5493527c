package downloader

// Config holds configuration for the Unicode data source downloads.
type Config struct {
	// EmojiTestURL is the location of the emoji-test.txt data file.
	EmojiTestURL string `mapstructure:"emoji_test_url" default:"https://unicode.org/Public/emoji/latest/emoji-test.txt"`
	// UnicodeDataURL is the location of the UnicodeData.txt registry file.
	UnicodeDataURL string `mapstructure:"unicode_data_url" default:"https://unicode.org/Public/UCD/latest/ucd/UnicodeData.txt"`
	// CacheDir is the directory where downloaded files are kept between runs.
	CacheDir string `mapstructure:"cache_dir" default:"db"`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
