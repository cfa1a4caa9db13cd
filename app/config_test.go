package app_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/cloudfoundry/lvm-expander/app"
	"github.com/cloudfoundry/lvm-expander/runner"
)

var _ = Describe("LoadConfigFromPath", func() {
	var fs *fakesys.FakeFileSystem

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
	})

	It("returns the defaults without a path", func() {
		config, err := LoadConfigFromPath(fs, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(config).To(Equal(Config{
			LogDir:           "/var/log",
			LogLevel:         "DEBUG",
			DeviceDir:        "/dev",
			RequiredCommands: runner.RequiredCommands,
		}))
	})

	It("overlays the file onto the defaults", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{
			"log_dir": "/var/log/lvm",
			"log_level": "info",
			"required_commands": ["lsblk", "pvs"]
		}`)
		Expect(err).ToNot(HaveOccurred())

		config, err := LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(config.LogDir).To(Equal("/var/log/lvm"))
		Expect(config.LogLevel).To(Equal("info"))
		Expect(config.DeviceDir).To(Equal("/dev"))
		Expect(config.RequiredCommands).To(Equal([]string{"lsblk", "pvs"}))
	})

	It("replaces the default command list with a shorter one", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{"required_commands": ["lsblk"]}`)
		Expect(err).ToNot(HaveOccurred())

		config, err := LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(config.RequiredCommands).To(Equal([]string{"lsblk"}))
		Expect(config.LogDir).To(Equal("/var/log"))
	})

	It("keeps the default command list when the file omits it", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{"device_dir": "/dev/disk"}`)
		Expect(err).ToNot(HaveOccurred())

		config, err := LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(config.DeviceDir).To(Equal("/dev/disk"))
		Expect(config.RequiredCommands).To(Equal(runner.RequiredCommands))
	})

	It("rejects unknown keys", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{"log_dri": "/tmp"}`)
		Expect(err).ToNot(HaveOccurred())

		_, err = LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Decoding file"))
	})

	It("rejects malformed JSON", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{`)
		Expect(err).ToNot(HaveOccurred())

		_, err = LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Loading file"))
	})

	It("returns an error when the file cannot be read", func() {
		err := fs.WriteFileString("/etc/lvm-expander.json", `{}`)
		Expect(err).ToNot(HaveOccurred())
		fs.ReadFileError = errors.New("fake-read-error")

		_, err = LoadConfigFromPath(fs, "/etc/lvm-expander.json")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("fake-read-error"))
	})
})

var _ = Describe("Config", func() {
	Describe("WithOptions", func() {
		It("lets flags override the file", func() {
			config := DefaultConfig().WithOptions(Options{LogDir: "/tmp/logs", LogLevel: "WARN"})
			Expect(config.LogDir).To(Equal("/tmp/logs"))
			Expect(config.LogLevel).To(Equal("WARN"))
		})

		It("keeps file values for unset flags", func() {
			config := Config{LogDir: "/var/log/lvm", LogLevel: "ERROR"}.WithOptions(Options{})
			Expect(config.LogDir).To(Equal("/var/log/lvm"))
			Expect(config.LogLevel).To(Equal("ERROR"))
		})
	})

	It("does not share the default command list", func() {
		config := DefaultConfig()
		config.RequiredCommands[0] = "changed"
		Expect(runner.RequiredCommands[0]).To(Equal("lsblk"))
	})
})
