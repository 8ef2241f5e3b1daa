package reconcile

import "uvctl/internal/catalog"

type opText struct {
	working       string
	workingDetail string
	ok            string
	failed        string
	message       string
}

func textsFor(op catalog.Operation) opText {
	v := op.Version
	switch op.Kind {
	case catalog.CheckTool:
		return opText{working: "Checking UV..."}
	case catalog.InstallTool:
		return opText{
			working:       "Installing UV...",
			workingDetail: "Installing UV... This may take a few minutes.",
			ok:            "UV installed successfully",
			failed:        "Installation failed",
			message:       "UV installed successfully! Please restart your terminal.",
		}
	case catalog.ListAvailable:
		return opText{
			working:       "Fetching Python versions...",
			workingDetail: "Fetching available Python versions...",
			ok:            "Python versions listed",
			failed:        "Failed to list versions",
		}
	case catalog.ListInstalled:
		return opText{working: "Refreshing...", workingDetail: "Refreshing installed versions..."}
	case catalog.InstallVersion:
		return opText{
			working:       "Installing Python " + v + "...",
			workingDetail: "Installing Python " + v + "... This may take several minutes.",
			ok:            "Python " + v + " installed",
			failed:        "Installation failed",
			message:       "Python " + v + " installed successfully",
		}
	case catalog.UninstallVersion:
		return opText{
			working:       "Uninstalling Python " + v + "...",
			workingDetail: "Uninstalling Python " + v + "...",
			ok:            "Python " + v + " uninstalled",
			failed:        "Uninstallation failed",
			message:       "Python " + v + " uninstalled successfully",
		}
	case catalog.FindVersion:
		return opText{working: "Finding Python...", ok: "Python found", failed: "Python not found"}
	case catalog.PinVersion:
		return opText{
			working:       "Pinning Python " + v + "...",
			workingDetail: "Pinning Python " + v + "...",
			ok:            "Python " + v + " pinned",
			failed:        "Failed to pin version",
			message:       "Pinned Python " + v + " for this project",
		}
	}
	return opText{working: "Working..."}
}
