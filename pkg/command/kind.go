// Package command classifies external command lines into command kinds.
package command

// Kind identifies what an external command asks the monitoring core to do.
// The zero value is Unknown.
type Kind int

const (
	// Unknown is the kind of identifiers that are neither in the table nor
	// custom commands.
	Unknown Kind = iota

	// Program-wide commands.
	DisableNotifications
	EnableNotifications
	DisableNotificationsExpireTime
	ShutdownProcess
	RestartProcess
	SaveStateInformation
	ReadStateInformation
	SyncStateInformation
	EnableEventHandlers
	DisableEventHandlers
	FlushPendingCommands
	EnableFailurePrediction
	DisableFailurePrediction
	EnablePerformanceData
	DisablePerformanceData
	StartExecutingHostChecks
	StopExecutingHostChecks
	StartExecutingSvcChecks
	StopExecutingSvcChecks
	StartAcceptingPassiveHostChecks
	StopAcceptingPassiveHostChecks
	StartAcceptingPassiveSvcChecks
	StopAcceptingPassiveSvcChecks
	StartObsessingOverHostChecks
	StopObsessingOverHostChecks
	StartObsessingOverSvcChecks
	StopObsessingOverSvcChecks
	EnableFlapDetection
	DisableFlapDetection
	ChangeGlobalHostEventHandler
	ChangeGlobalSvcEventHandler
	EnableServiceFreshnessChecks
	DisableServiceFreshnessChecks
	EnableHostFreshnessChecks
	DisableHostFreshnessChecks

	// Host commands.
	AddHostComment
	DelHostComment
	DelAllHostComments
	DelayHostNotification
	EnableHostNotifications
	DisableHostNotifications
	EnableAllNotificationsBeyondHost
	DisableAllNotificationsBeyondHost
	EnableHostAndChildNotifications
	DisableHostAndChildNotifications
	EnableHostSvcNotifications
	DisableHostSvcNotifications
	EnableHostSvcChecks
	DisableHostSvcChecks
	EnablePassiveHostChecks
	DisablePassiveHostChecks
	ScheduleHostSvcChecks
	ScheduleForcedHostSvcChecks
	AcknowledgeHostProblem
	AcknowledgeHostProblemExpire
	RemoveHostAcknowledgement
	EnableHostEventHandler
	DisableHostEventHandler
	EnableHostCheck
	DisableHostCheck
	ScheduleHostCheck
	ScheduleForcedHostCheck
	ScheduleHostDowntime
	ScheduleHostSvcDowntime
	DelHostDowntime
	DelDowntimeByHostName
	DelDowntimeByHostgroupName
	DelDowntimeByStartTimeComment
	EnableHostFlapDetection
	DisableHostFlapDetection
	StartObsessingOverHost
	StopObsessingOverHost
	ChangeHostEventHandler
	ChangeHostCheckCommand
	ChangeNormalHostCheckInterval
	ChangeRetryHostCheckInterval
	ChangeMaxHostCheckAttempts
	ScheduleAndPropagateTriggeredHostDowntime
	ScheduleAndPropagateHostDowntime
	SetHostNotificationNumber
	ChangeHostCheckTimeperiod
	ChangeCustomHostVar
	SendCustomHostNotification
	ChangeHostNotificationTimeperiod
	ChangeHostModattr

	// Hostgroup commands.
	EnableHostgroupHostNotifications
	DisableHostgroupHostNotifications
	EnableHostgroupSvcNotifications
	DisableHostgroupSvcNotifications
	EnableHostgroupHostChecks
	DisableHostgroupHostChecks
	EnableHostgroupPassiveHostChecks
	DisableHostgroupPassiveHostChecks
	EnableHostgroupSvcChecks
	DisableHostgroupSvcChecks
	EnableHostgroupPassiveSvcChecks
	DisableHostgroupPassiveSvcChecks
	ScheduleHostgroupHostDowntime
	ScheduleHostgroupSvcDowntime

	// Service commands.
	AddSvcComment
	DelSvcComment
	DelAllSvcComments
	ScheduleSvcCheck
	ScheduleForcedSvcCheck
	EnableSvcCheck
	DisableSvcCheck
	EnablePassiveSvcChecks
	DisablePassiveSvcChecks
	DelaySvcNotification
	EnableSvcNotifications
	DisableSvcNotifications
	ProcessServiceCheckResult
	ProcessHostCheckResult
	EnableSvcEventHandler
	DisableSvcEventHandler
	EnableSvcFlapDetection
	DisableSvcFlapDetection
	ScheduleSvcDowntime
	DelSvcDowntime
	AcknowledgeSvcProblem
	AcknowledgeSvcProblemExpire
	RemoveSvcAcknowledgement
	StartObsessingOverSvc
	StopObsessingOverSvc
	ChangeSvcEventHandler
	ChangeSvcCheckCommand
	ChangeNormalSvcCheckInterval
	ChangeRetrySvcCheckInterval
	ChangeMaxSvcCheckAttempts
	SetSvcNotificationNumber
	ChangeSvcCheckTimeperiod
	ChangeCustomSvcVar
	ChangeCustomContactVar
	SendCustomSvcNotification
	ChangeSvcNotificationTimeperiod
	ChangeSvcModattr

	// Servicegroup commands.
	EnableServicegroupHostNotifications
	DisableServicegroupHostNotifications
	EnableServicegroupSvcNotifications
	DisableServicegroupSvcNotifications
	EnableServicegroupHostChecks
	DisableServicegroupHostChecks
	EnableServicegroupPassiveHostChecks
	DisableServicegroupPassiveHostChecks
	EnableServicegroupSvcChecks
	DisableServicegroupSvcChecks
	EnableServicegroupPassiveSvcChecks
	DisableServicegroupPassiveSvcChecks
	ScheduleServicegroupHostDowntime
	ScheduleServicegroupSvcDowntime

	// Contact commands.
	EnableContactHostNotifications
	DisableContactHostNotifications
	EnableContactSvcNotifications
	DisableContactSvcNotifications
	ChangeContactHostNotificationTimeperiod
	ChangeContactSvcNotificationTimeperiod
	ChangeContactModattr
	ChangeContactModhattr
	ChangeContactModsattr

	// Contactgroup commands.
	EnableContactgroupHostNotifications
	DisableContactgroupHostNotifications
	EnableContactgroupSvcNotifications
	DisableContactgroupSvcNotifications

	// Miscellaneous commands.
	ProcessFile

	// Custom covers every identifier starting with CustomPrefix.
	Custom
)

// CustomPrefix marks user-defined commands that are not part of the table.
const CustomPrefix = "_"

// String returns the canonical identifier of the kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "UNKNOWN"
	case Custom:
		return "CUSTOM_COMMAND"
	}
	if d, ok := byKind[k]; ok {
		return d.Names[0]
	}
	return "UNKNOWN"
}

// Group returns the subject the kind belongs to.
func (k Kind) Group() Group {
	if k == Custom {
		return GroupCustom
	}
	if d, ok := byKind[k]; ok {
		return d.Group
	}
	return GroupNone
}

// MarshalText encodes the kind as its canonical identifier.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Group is the subject a command kind operates on. It only serves
// documentation and listing purposes.
type Group string

const (
	GroupNone         Group = ""
	GroupProgram      Group = "program"
	GroupHost         Group = "host"
	GroupHostgroup    Group = "hostgroup"
	GroupService      Group = "service"
	GroupServicegroup Group = "servicegroup"
	GroupContact      Group = "contact"
	GroupContactgroup Group = "contactgroup"
	GroupMisc         Group = "misc"
	GroupCustom       Group = "custom"
)

// Groups lists the table groups in display order.
func Groups() []Group {
	return []Group{
		GroupProgram,
		GroupHost,
		GroupHostgroup,
		GroupService,
		GroupServicegroup,
		GroupContact,
		GroupContactgroup,
		GroupMisc,
	}
}
