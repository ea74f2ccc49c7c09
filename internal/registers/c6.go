// internal/registers/c6.go
package registers

// C6 family register addresses. The catalog is 1-based; the wire is 0-based
// (wire address = catalog address - 1, applied by the transport).
const (
	// Basic control
	RegPower           uint16 = 1  // ON/OFF status
	RegAutoModeControl uint16 = 2  // Auto mode control
	RegEcoMode         uint16 = 3  // ECO mode
	RegAutoMode        uint16 = 4  // AUTO mode
	RegOperationMode   uint16 = 5  // Operation mode
	RegSchedulerMode   uint16 = 6  // Scheduler operation mode
	RegNextMode        uint16 = 7  // Next mode
	RegNextModeTime    uint16 = 8  // Next mode start time
	RegNextModeWeekday uint16 = 9  // Next mode weekday
	RegBeforeModeMask  uint16 = 10 // Before been mode mask

	// Temperature and flow control
	RegTempControl        uint16 = 11 // Temperature control
	RegFlowControl        uint16 = 12 // Flow control
	RegMaxSupplyFlow      uint16 = 13 // Maximum supply flow (32-bit)
	RegMaxExtractFlow     uint16 = 15 // Maximum extract flow (32-bit)
	RegMaxSupplyPressure  uint16 = 17 // Max supply pressure
	RegMaxExtractPressure uint16 = 18 // Max extract pressure
	RegRoomSensor         uint16 = 39 // Room sensor (Panel 1 = 0, Panel 2 = 1)

	// Control sequence
	RegStage1           uint16 = 19 // Control stage 1
	RegStage2           uint16 = 20 // Control stage 2
	RegStage3           uint16 = 21 // Control stage 3
	RegExternalCoilType uint16 = 22 // External coil type
	RegIcingProtection  uint16 = 40 // Icing protection (Off = 0, On = 1, External coil = 2)
	RegIndoorHumidity   uint16 = 41 // Indoor humidity (Auto = -1, Manual = 10-90 %RH)

	// Connectivity
	RegDHCP       uint16 = 35 // DHCP (Off = 0, On = 1)
	RegIP         uint16 = 23 // IP address (32-bit)
	RegMask       uint16 = 25 // Network mask (32-bit)
	RegGateway    uint16 = 36 // Network gateway (32-bit)
	RegBacnetID   uint16 = 38 // Bacnet ID (32-bit)
	RegBacnetPort uint16 = 44 // Bacnet port

	// Settings
	RegLanguage         uint16 = 27 // Language
	RegFlowUnit         uint16 = 28 // Flow unit
	RegFireAlarmRestart uint16 = 42 // Fire alarm restart (Off = 0, On = 1)

	// Time and date
	RegTime      uint16 = 29 // Time HH:MM
	RegYear      uint16 = 30 // Year
	RegMonthDay  uint16 = 31 // Month/Day
	RegWeekDay   uint16 = 32 // Week day
	RegEpochTime uint16 = 33 // Seconds since 1970 (32-bit)

	// Away mode
	RegAwayFanSupply  uint16 = 100 // Supply flow (32-bit)
	RegAwayFanExtract uint16 = 102 // Extract flow (32-bit)
	RegAwayTemp       uint16 = 104 // Setpoint
	RegAwayHeater     uint16 = 105 // Electric heater

	// Normal mode
	RegNormalFanSupply  uint16 = 106 // Supply flow (32-bit)
	RegNormalFanExtract uint16 = 108 // Extract flow (32-bit)
	RegNormalSetpoint   uint16 = 110 // Setpoint
	RegNormalHeater     uint16 = 111 // Electric heater

	// Intensive mode
	RegIntensiveFanSupply  uint16 = 112 // Supply flow (32-bit)
	RegIntensiveFanExtract uint16 = 114 // Extract flow (32-bit)
	RegIntensiveTemp       uint16 = 116 // Setpoint
	RegIntensiveHeater     uint16 = 117 // Electric heater

	// Boost mode
	RegBoostFanSupply  uint16 = 118 // Supply flow (32-bit)
	RegBoostFanExtract uint16 = 120 // Extract flow (32-bit)
	RegBoostTemp       uint16 = 122 // Setpoint
	RegBoostHeater     uint16 = 123 // Electric heater

	// Kitchen mode
	RegKitchenSupply  uint16 = 124 // Supply flow (32-bit)
	RegKitchenExtract uint16 = 126 // Extract flow (32-bit)
	RegKitchenTemp    uint16 = 128 // Setpoint
	RegKitchenHeater  uint16 = 129 // Electric heater
	RegKitchenTimer   uint16 = 130 // Timer time

	// Fireplace mode
	RegFireplaceSupply  uint16 = 131 // Supply flow (32-bit)
	RegFireplaceExtract uint16 = 133 // Extract flow (32-bit)
	RegFireplaceTemp    uint16 = 135 // Setpoint
	RegFireplaceHeater  uint16 = 136 // Electric heater
	RegFireplaceTimer   uint16 = 137 // Timer time

	// Override mode
	RegOverrideSupply     uint16 = 138 // Supply flow (32-bit)
	RegOverrideExtract    uint16 = 140 // Extract flow (32-bit)
	RegOverrideTemp       uint16 = 142 // Setpoint
	RegOverrideHeater     uint16 = 143 // Electric heater
	RegOverrideActivation uint16 = 144 // Activation mode
	RegOverrideTimer      uint16 = 145 // Timer time
	RegOverrideDelayStart uint16 = 157 // Delayed start time (0-10 minutes)
	RegOverrideDelayStop  uint16 = 158 // Delayed stop time (0-30 minutes)

	// Holiday mode
	RegHolidaysMicroVent uint16 = 146 // Micro-ventilation
	RegHolidaysTemp      uint16 = 147 // Setpoint
	RegHolidaysHeater    uint16 = 148 // Electric heater
	RegHolidaysFrom      uint16 = 149 // From Day/Month (32-bit)
	RegHolidaysUntil     uint16 = 151 // Until Day/Month (32-bit)
	RegHolidaysYearFrom  uint16 = 153 // Year, from
	RegHolidaysDateFrom  uint16 = 154 // Month/Day, from
	RegHolidaysYearTill  uint16 = 155 // Year, until
	RegHolidaysDateTill  uint16 = 156 // Month/Day, until

	// ECO settings
	RegEcoMinTemp        uint16 = 200 // Minimum supply air temperature
	RegEcoMaxTemp        uint16 = 201 // Maximum supply air temperature
	RegEcoFreeHeatCool   uint16 = 202 // Free heating/cooling
	RegEcoHeaterBlocking uint16 = 203 // Heating denied
	RegEcoCoolerBlocking uint16 = 204 // Cooling denied
	RegEcoHeatRecovery   uint16 = 217 // Heat recovery control mode

	// Air quality settings
	RegAQImpurityControl  uint16 = 205 // Impurity control
	RegAQTempSetpoint     uint16 = 206 // Temperature setpoint
	RegAQImpuritySetpoint uint16 = 207 // CO2/VOC setpoint
	RegAQHumiditySetpoint uint16 = 208 // Humidity setpoint
	RegAQMinIntensity     uint16 = 209 // Air quality minimum intensity
	RegAQMaxIntensity     uint16 = 210 // Air quality maximum intensity
	RegAQElectricHeater   uint16 = 211 // Air quality electric heater
	RegAQCheckPeriod      uint16 = 212 // Air quality check period
	RegAQSensor1Type      uint16 = 213 // Air quality sensor 1 type
	RegAQSensor2Type      uint16 = 214 // Air quality sensor 2 type
	RegAQHumidityControl  uint16 = 215 // Humidity control
	RegAQOutdoorHumidity  uint16 = 216 // Outdoor humidity sensor

	// Active alarms. Writing 0x99C6 to the count register resets alarms
	// and restores the previous mode.
	RegActiveAlarmsCount uint16 = 600
	RegActiveAlarm1      uint16 = 601
	RegActiveAlarm2      uint16 = 602
	RegActiveAlarm3      uint16 = 603
	RegActiveAlarm4      uint16 = 604
	RegActiveAlarm5      uint16 = 605
	RegActiveAlarm6      uint16 = 606
	RegActiveAlarm7      uint16 = 607
	RegActiveAlarm8      uint16 = 608
	RegActiveAlarm9      uint16 = 609
	RegActiveAlarm10     uint16 = 610

	// Monitoring.
	// Unit status bitmask values:
	// Starting=0, Stopping=1, Fan=2, Rotor=3, Heating=4, Cooling=5,
	// HeatingDenied=6, CoolingDenied=7, FlowDown=8, FreeHeating=9,
	// FreeCooling=10, AlarmF=11, AlarmW=12
	RegStatus             uint16 = 900 // Unit status bitmask
	RegHeatingConfig      uint16 = 901 // Heating/cooling config
	RegSupplyTemp         uint16 = 902 // Supply air temperature (x10 C)
	RegExtractTemp        uint16 = 903 // Extract air temperature (x10 C)
	RegOutdoorTemp        uint16 = 904 // Outdoor air temperature (x10 C)
	RegWaterTemp          uint16 = 905 // Water temperature (x10 C)
	RegSupplyFlow         uint16 = 906 // Supply air flow (32-bit)
	RegExtractFlow        uint16 = 908 // Extract air flow (32-bit)
	RegSupplyFan          uint16 = 910 // Supply fan speed
	RegExtractFan         uint16 = 911 // Extract fan speed
	RegHeatExchanger      uint16 = 912 // Heat exchanger signal
	RegElectricHeater     uint16 = 913 // Electric heater signal (x10 %)
	RegWaterHeater        uint16 = 914 // Water heater signal
	RegWaterCooler        uint16 = 915 // Water cooler signal
	RegDXUnit             uint16 = 916 // DX unit signal
	RegFilterClogging     uint16 = 917 // Filter clogging
	RegAirDampers         uint16 = 918 // Air dampers
	RegSupplyPressure     uint16 = 919 // Supply pressure
	RegExtractPressure    uint16 = 920 // Extract pressure
	RegExtractAQ1         uint16 = 952 // Air quality sensor 1 value
	RegExtractAQ2         uint16 = 953 // Air quality sensor 2 value
	RegHeatExchangerType  uint16 = 955 // Heat exchanger type
	RegIndoorAbsHumidity  uint16 = 956 // Indoor absolute humidity
	RegOutdoorAbsHumidity uint16 = 957 // Outdoor absolute humidity
	RegExhaustTemp        uint16 = 961 // Exhaust temperature (x10 C)

	// Efficiency status
	RegPowerConsumption uint16 = 921 // Power consumption
	RegHeaterPower      uint16 = 922 // Heater power
	RegHeatRecovery     uint16 = 923 // Heat recovery
	RegHeatEfficiency   uint16 = 924 // Heat exchanger efficiency
	RegEnergySaving     uint16 = 925 // Energy saving
	RegSPI              uint16 = 926 // Specific power input

	// Consumption counters
	RegAHUDay        uint16 = 927 // AHU consumption, day (32-bit)
	RegAHUMonth      uint16 = 929 // AHU consumption, month (32-bit)
	RegAHUTotal      uint16 = 931 // AHU consumption, total (32-bit)
	RegHeaterDay     uint16 = 933 // Additional heater, day (32-bit)
	RegHeaterMonth   uint16 = 935 // Additional heater, month (32-bit)
	RegHeaterTotal   uint16 = 937 // Additional heater, total (32-bit)
	RegRecoveryDay   uint16 = 939 // Recovered energy, day (32-bit)
	RegRecoveryMonth uint16 = 941 // Recovered energy, month (32-bit)
	RegRecoveryTotal uint16 = 943 // Recovered energy, total (32-bit)
	RegSPIDay        uint16 = 945 // SPI per day

	// Panel sensors
	RegPanel1Temp      uint16 = 946 // Panel 1 temperature (x10 C)
	RegPanel1RH        uint16 = 947 // Panel 1 relative humidity (x10 %)
	RegPanel1AQ        uint16 = 948 // Panel 1 air quality
	RegPanel2Temp      uint16 = 949 // Panel 2 temperature (x10 C)
	RegPanel2RH        uint16 = 950 // Panel 2 relative humidity (x10 %)
	RegPanel2AQ        uint16 = 951 // Panel 2 air quality
	RegConnectedPanels uint16 = 954 // Connected panels bitmask

	// Digital outputs
	RegDOAlarm   uint16 = 958
	RegDOHeating uint16 = 959
	RegDOCooling uint16 = 960

	// Firmware
	RegFirmware uint16 = 1000 // Controller firmware version (32-bit)
	RegPanel1FW uint16 = 1002 // Panel 1 firmware version (32-bit)
	RegPanel2FW uint16 = 1004 // Panel 2 firmware version (32-bit)

	// Maintenance
	RegResetSettings uint16 = 1050 // Reset settings
	RegCleanFilters  uint16 = 1051 // Clean filters calibration
)

// c6Table lists every documented C6 register with its datatype and access.
// Order within the literal follows the device documentation groups; the
// catalog itself is address-keyed.
var c6Table = []Register{
	// Basic control
	{RegPower, Boolean, ReadWrite},
	{RegAutoModeControl, Uint16, ReadWrite},
	{RegEcoMode, Boolean, ReadWrite},
	{RegAutoMode, Boolean, ReadWrite},
	{RegOperationMode, Uint16, ReadWrite},
	{RegSchedulerMode, Uint16, ReadWrite},
	{RegNextMode, Uint16, ReadOnly},
	{RegNextModeTime, Uint16, ReadOnly},
	{RegNextModeWeekday, Uint16, ReadOnly},
	{RegBeforeModeMask, Uint16, ReadOnly},

	// Temperature and flow control
	{RegTempControl, Uint16, ReadWrite},
	{RegFlowControl, Uint16, ReadWrite},
	{RegMaxSupplyFlow, Uint32, ReadWrite},
	{RegMaxExtractFlow, Uint32, ReadWrite},
	{RegMaxSupplyPressure, Uint16, ReadWrite},
	{RegMaxExtractPressure, Uint16, ReadWrite},
	{RegRoomSensor, Uint16, ReadWrite},

	// Control sequence
	{RegStage1, Uint16, ReadWrite},
	{RegStage2, Uint16, ReadWrite},
	{RegStage3, Uint16, ReadWrite},
	{RegExternalCoilType, Uint16, ReadWrite},
	{RegIcingProtection, Uint16, ReadWrite},
	{RegIndoorHumidity, Int16, ReadWrite},

	// Connectivity
	{RegDHCP, Boolean, ReadWrite},
	{RegIP, Uint32, ReadWrite},
	{RegMask, Uint32, ReadWrite},
	{RegGateway, Uint32, ReadWrite},
	{RegBacnetID, Uint32, ReadWrite},
	{RegBacnetPort, Uint16, ReadWrite},

	// Settings
	{RegLanguage, Uint16, ReadWrite},
	{RegFlowUnit, Uint16, ReadWrite},
	{RegFireAlarmRestart, Boolean, ReadWrite},

	// Time and date
	{RegTime, Uint16, ReadWrite},
	{RegYear, Uint16, ReadWrite},
	{RegMonthDay, Uint16, ReadWrite},
	{RegWeekDay, Uint16, ReadWrite},
	{RegEpochTime, Uint32, ReadWrite},

	// Mode presets
	{RegAwayFanSupply, Uint32, ReadWrite},
	{RegAwayFanExtract, Uint32, ReadWrite},
	{RegAwayTemp, Int16, ReadWrite},
	{RegAwayHeater, Boolean, ReadWrite},
	{RegNormalFanSupply, Uint32, ReadWrite},
	{RegNormalFanExtract, Uint32, ReadWrite},
	{RegNormalSetpoint, Int16, ReadWrite},
	{RegNormalHeater, Boolean, ReadWrite},
	{RegIntensiveFanSupply, Uint32, ReadWrite},
	{RegIntensiveFanExtract, Uint32, ReadWrite},
	{RegIntensiveTemp, Int16, ReadWrite},
	{RegIntensiveHeater, Boolean, ReadWrite},
	{RegBoostFanSupply, Uint32, ReadWrite},
	{RegBoostFanExtract, Uint32, ReadWrite},
	{RegBoostTemp, Int16, ReadWrite},
	{RegBoostHeater, Boolean, ReadWrite},
	{RegKitchenSupply, Uint32, ReadWrite},
	{RegKitchenExtract, Uint32, ReadWrite},
	{RegKitchenTemp, Int16, ReadWrite},
	{RegKitchenHeater, Boolean, ReadWrite},
	{RegKitchenTimer, Uint16, ReadWrite},
	{RegFireplaceSupply, Uint32, ReadWrite},
	{RegFireplaceExtract, Uint32, ReadWrite},
	{RegFireplaceTemp, Int16, ReadWrite},
	{RegFireplaceHeater, Boolean, ReadWrite},
	{RegFireplaceTimer, Uint16, ReadWrite},
	{RegOverrideSupply, Uint32, ReadWrite},
	{RegOverrideExtract, Uint32, ReadWrite},
	{RegOverrideTemp, Int16, ReadWrite},
	{RegOverrideHeater, Boolean, ReadWrite},
	{RegOverrideActivation, Uint16, ReadWrite},
	{RegOverrideTimer, Uint16, ReadWrite},
	{RegOverrideDelayStart, Uint16, ReadWrite},
	{RegOverrideDelayStop, Uint16, ReadWrite},
	{RegHolidaysMicroVent, Uint16, ReadWrite},
	{RegHolidaysTemp, Int16, ReadWrite},
	{RegHolidaysHeater, Boolean, ReadWrite},
	{RegHolidaysFrom, Uint32, ReadWrite},
	{RegHolidaysUntil, Uint32, ReadWrite},
	{RegHolidaysYearFrom, Uint16, ReadWrite},
	{RegHolidaysDateFrom, Uint16, ReadWrite},
	{RegHolidaysYearTill, Uint16, ReadWrite},
	{RegHolidaysDateTill, Uint16, ReadWrite},

	// ECO and air quality
	{RegEcoMinTemp, Uint16, ReadWrite},
	{RegEcoMaxTemp, Uint16, ReadWrite},
	{RegEcoFreeHeatCool, Boolean, ReadWrite},
	{RegEcoHeaterBlocking, Boolean, ReadWrite},
	{RegEcoCoolerBlocking, Boolean, ReadWrite},
	{RegAQImpurityControl, Boolean, ReadWrite},
	{RegAQTempSetpoint, Int16, ReadWrite},
	{RegAQImpuritySetpoint, Uint16, ReadWrite},
	{RegAQHumiditySetpoint, Uint16, ReadWrite},
	{RegAQMinIntensity, Uint16, ReadWrite},
	{RegAQMaxIntensity, Uint16, ReadWrite},
	{RegAQElectricHeater, Boolean, ReadWrite},
	{RegAQCheckPeriod, Uint16, ReadWrite},
	{RegAQSensor1Type, Uint16, ReadWrite},
	{RegAQSensor2Type, Uint16, ReadWrite},
	{RegAQHumidityControl, Uint16, ReadWrite},
	{RegAQOutdoorHumidity, Uint16, ReadWrite},
	{RegEcoHeatRecovery, Uint16, ReadWrite},

	// Active alarms
	{RegActiveAlarmsCount, Uint16, ReadWrite},
	{RegActiveAlarm1, Uint16, ReadOnly},
	{RegActiveAlarm2, Uint16, ReadOnly},
	{RegActiveAlarm3, Uint16, ReadOnly},
	{RegActiveAlarm4, Uint16, ReadOnly},
	{RegActiveAlarm5, Uint16, ReadOnly},
	{RegActiveAlarm6, Uint16, ReadOnly},
	{RegActiveAlarm7, Uint16, ReadOnly},
	{RegActiveAlarm8, Uint16, ReadOnly},
	{RegActiveAlarm9, Uint16, ReadOnly},
	{RegActiveAlarm10, Uint16, ReadOnly},

	// Monitoring
	{RegStatus, Uint16, ReadOnly},
	{RegHeatingConfig, Uint16, ReadOnly},
	{RegSupplyTemp, Int16, ReadOnly},
	{RegExtractTemp, Int16, ReadOnly},
	{RegOutdoorTemp, Int16, ReadOnly},
	{RegWaterTemp, Int16, ReadOnly},
	{RegSupplyFlow, Uint32, ReadOnly},
	{RegExtractFlow, Uint32, ReadOnly},
	{RegSupplyFan, Uint16, ReadOnly},
	{RegExtractFan, Uint16, ReadOnly},
	{RegHeatExchanger, Uint16, ReadOnly},
	{RegElectricHeater, Uint16, ReadOnly},
	{RegWaterHeater, Uint16, ReadOnly},
	{RegWaterCooler, Uint16, ReadOnly},
	{RegDXUnit, Int16, ReadOnly},
	{RegFilterClogging, Uint16, ReadOnly},
	{RegAirDampers, Uint16, ReadOnly},
	{RegSupplyPressure, Uint16, ReadOnly},
	{RegExtractPressure, Uint16, ReadOnly},

	// Efficiency and consumption
	{RegPowerConsumption, Uint16, ReadOnly},
	{RegHeaterPower, Uint16, ReadOnly},
	{RegHeatRecovery, Uint16, ReadOnly},
	{RegHeatEfficiency, Uint16, ReadOnly},
	{RegEnergySaving, Uint16, ReadOnly},
	{RegSPI, Uint16, ReadOnly},
	{RegAHUDay, Uint32, ReadOnly},
	{RegAHUMonth, Uint32, ReadOnly},
	{RegAHUTotal, Uint32, ReadOnly},
	{RegHeaterDay, Uint32, ReadOnly},
	{RegHeaterMonth, Uint32, ReadOnly},
	{RegHeaterTotal, Uint32, ReadOnly},
	{RegRecoveryDay, Uint32, ReadOnly},
	{RegRecoveryMonth, Uint32, ReadOnly},
	{RegRecoveryTotal, Uint32, ReadOnly},
	{RegSPIDay, Uint16, ReadOnly},

	// Panel sensors
	{RegPanel1Temp, Int16, ReadOnly},
	{RegPanel1RH, Int16, ReadOnly},
	{RegPanel1AQ, Uint16, ReadOnly},
	{RegPanel2Temp, Int16, ReadOnly},
	{RegPanel2RH, Int16, ReadOnly},
	{RegPanel2AQ, Uint16, ReadOnly},
	{RegExtractAQ1, Uint16, ReadOnly},
	{RegExtractAQ2, Uint16, ReadOnly},
	{RegConnectedPanels, Uint16, ReadOnly},
	{RegHeatExchangerType, Uint16, ReadOnly},
	{RegIndoorAbsHumidity, Uint16, ReadOnly},
	{RegOutdoorAbsHumidity, Uint16, ReadOnly},
	{RegExhaustTemp, Int16, ReadOnly},

	// Digital outputs
	{RegDOAlarm, Boolean, ReadOnly},
	{RegDOHeating, Boolean, ReadOnly},
	{RegDOCooling, Boolean, ReadOnly},

	// Firmware
	{RegFirmware, Uint32, ReadOnly},
	{RegPanel1FW, Uint32, ReadOnly},
	{RegPanel2FW, Uint32, ReadOnly},

	// Maintenance
	{RegResetSettings, Uint16, ReadWrite},
	{RegCleanFilters, Uint16, ReadWrite},
}

// c6Catalog is the attribute-bearing catalog used by firmware-reporting
// families (C6, C6M, C8). Undocumented addresses inside a requested range
// are gaps, not faults: InRange simply skips them.
type c6Catalog struct {
	byAddr map[uint16]Register
}

func newC6Catalog() *c6Catalog {
	m := make(map[uint16]Register, len(c6Table))
	for _, r := range c6Table {
		m[r.Address] = r
	}
	return &c6Catalog{byAddr: m}
}

// C6 returns the shared extended catalog.
func C6() Catalog { return c6 }

var c6 = newC6Catalog()

func (c *c6Catalog) Lookup(addr uint16) (Register, error) {
	r, ok := c.byAddr[addr]
	if !ok {
		return Register{}, ErrNotFound
	}
	return r, nil
}

func (c *c6Catalog) InRange(start, count uint16) ([]Register, error) {
	out := make([]Register, 0, count)
	addr := start
	end := start + count
	for addr < end {
		r, ok := c.byAddr[addr]
		if !ok {
			// Reserved gap or the low word of a preceding 32-bit register.
			addr++
			continue
		}
		out = append(out, r)
		addr += r.Datatype.Words()
	}
	return out, nil
}
